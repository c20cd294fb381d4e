package main

import "github.com/ecoride/rental/pkg/interfaces/cli/commands"

func main() {
	commands.Execute()
}
