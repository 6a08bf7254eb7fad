package main

import "a11y-lint/src/handler/cli"

func main() {
	cli.Run()
}
