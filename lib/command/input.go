package command

import (
	"io"
	"os"
)

// readInput loads one diff operand. "-" reads the whole of stdin, anything
// else is a file path.
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
