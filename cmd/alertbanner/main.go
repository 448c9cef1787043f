package main

import "github.com/ngmaloney/alert-banner/internal/cli"

func main() {
	cli.Execute()
}
