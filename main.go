package main

import "promptdiff/cmd"

func main() {
	cmd.Execute()
}
