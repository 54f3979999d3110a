package main

import (
	// Import the cmd directory with root.go
	"github.com/redjax/droidutil/cmd"
)

func main() {
	cmd.Execute()
}
