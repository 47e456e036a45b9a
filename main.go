package main

import "github.com/spectralab/autofft/cmd"

func main() {
	cmd.Execute()
}
