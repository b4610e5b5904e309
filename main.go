package main

import "github.com/notargets/clement/cmd"

func main() {
	cmd.Execute()
}
