package main

import "retirement_planner/internal/cli"

func main() {
	cli.Execute()
}
