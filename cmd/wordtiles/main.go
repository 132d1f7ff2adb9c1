package main

import "github.com/mcoot/wordtiles/internal/cli"

func main() {
	cli.Execute()
}
