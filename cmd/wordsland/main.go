package main

import "github.com/mcoot/wordsland/internal/cli"

func main() {
	cli.Execute()
}
