package main

import "github.com/runforge/runforge/cmd"

func main() {
	cmd.Execute()
}
