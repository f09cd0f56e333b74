package main

import "schemalab/internal/cli"

func main() {
	cli.Execute()
}
