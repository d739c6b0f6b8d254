package main

import "othello/cli"

func main() {
	cli.Execute()
}
