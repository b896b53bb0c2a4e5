package main

import "github.com/quash-sh/quash/cmd"

func main() {
	cmd.Execute()
}
