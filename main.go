// Package main is the entry point for the rtgrab application.
package main

import (
	"github.com/rtgrab-cli/rtgrab/cmd"
	"github.com/rtgrab-cli/rtgrab/config"
	"github.com/rtgrab-cli/rtgrab/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
