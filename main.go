// Package main is the entry point for the contar application.
package main

import (
	"github.com/contar-cli/contar/cmd"
	"github.com/contar-cli/contar/config"
	"github.com/contar-cli/contar/log"
	"github.com/contar-cli/contar/network"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	network.Setup()

	cmd.Execute()
}
