// Package main is the entry point of the kollel CLI.
package main

import (
	"github.com/kollel-app/kollel/cmd"
	"github.com/kollel-app/kollel/config"
	"github.com/kollel-app/kollel/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
