package main

import (
	"os"

	"github.com/ZettaAI/SEAMLeSS/cmd"
	"github.com/ZettaAI/SEAMLeSS/logger"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		logger.PrintSimpleError(err)
		os.Exit(1)
	}
}
