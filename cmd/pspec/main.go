package main

import "pspec/internal/cli"

func main() {
	cli.Execute()
}
