package main

import (
	// Import the cmd directory with root.go
	"github.com/redjax/platinfo/cmd"
)

func main() {
	// Call the root command
	cmd.Execute()
}
