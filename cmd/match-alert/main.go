package main

import "github.com/pfrederiksen/match-alert/internal/cli"

func main() {
	cli.Execute()
}
