package main

import (
	"booknet/internal/cli"
)

func main() {
	cli.Execute()
}
