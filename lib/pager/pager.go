package pager

import (
	"io"
	"os"
	"os/exec"
	"strings"
)

// SetupPager pipes stdout through the user's pager when writing to a
// terminal. It returns the writer to use and a cleanup func that must be
// called once output is complete. Off-TTY, output passes through untouched.
//
// $PAGER is honored (split on whitespace); the fallback is less -R so ANSI
// colors survive paging.
func SetupPager(isTTY bool, stdout, stderr io.Writer) (io.Writer, func()) {
	if !isTTY {
		return stdout, func() {}
	}

	argv := strings.Fields(os.Getenv("PAGER"))
	if len(argv) == 0 {
		argv = []string{"less", "-R"}
	}

	reader, writer := io.Pipe()

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = reader
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		reader.Close()
		writer.Close()
		return stdout, func() {}
	}

	go func() {
		cmd.Wait()
		reader.Close()
	}()

	return writer, func() {
		writer.Close()
		cmd.Wait()
	}
}
