package main

import "pipcheck/internal/cli"

func main() {
	cli.Execute()
}
