package main

import "github.com/pfrederiksen/worldcup-dashboard/internal/cli"

func main() {
	cli.Execute()
}
