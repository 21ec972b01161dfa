package main

import "github.com/chriserin/featgen/cmd"

func main() {
	cmd.Execute()
}
