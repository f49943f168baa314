package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/multitree/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	if err := ctx.Run(&cli.Context{Out: os.Stdout}); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
