package main

import "github.com/jdgunter/gaia-project-scraper/internal/cli"

func main() {
	cli.Execute()
}
