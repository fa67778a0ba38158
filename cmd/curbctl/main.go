package main

import "github.com/curbwise/curbwise-go/cmd/curbctl/cmd"

func main() {
	cmd.Execute()
}
