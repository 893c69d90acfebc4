package main

import (
	"github.com/fino-labs/fino-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
