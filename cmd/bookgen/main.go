package main

import (
	"os"

	"bookfaker/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Error().Err(err).Msg("bookgen failed")
		os.Exit(1)
	}
}
