package main

import "github.com/2beens/gymtracker/internal/cli"

func main() {
	cli.Execute()
}
