package main

import "github.com/kozaktomas/slideshow-builder/cmd"

func main() {
	cmd.Execute()
}
