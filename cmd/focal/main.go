package main

import "github.com/focalhq/cli/internal/cmd"

func main() {
	cmd.Execute()
}
