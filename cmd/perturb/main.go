package main

import "perturb/internal/cli"

func main() {
	cli.Execute()
}
