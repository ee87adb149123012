package main

import "github.com/umbcdata/degree-offerings/internal/cli"

func main() {
	cli.Execute()
}
