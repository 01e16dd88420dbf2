package main

import "github.com/ckirschner/ProjectSync/cmd"

func main() {
	cmd.Execute()
}
