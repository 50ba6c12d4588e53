package main

import (
	"github.com/rs/zerolog"
	"os"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCommand(os.Stdout, logger).Execute(); err != nil {
		logger.Fatal().Err(err).Msg("chunktype failed")
	}
}
