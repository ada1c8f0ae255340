package main

import "github.com/streamforge/streamforge/cmd"

func main() {
	cmd.Execute()
}
