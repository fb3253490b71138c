package main

import "utilkit/internal/cli"

func main() {
	cli.Execute()
}
