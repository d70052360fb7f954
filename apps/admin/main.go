package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/trezcool/mindcanvas/core"
	"github.com/trezcool/mindcanvas/core/apikey"
)

func main() {
	defer os.Exit(0)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("component", "admin").Logger()

	conf := core.NewConfig()
	if conf.UsesDefaultAPIKey() {
		logger.Warn().Msg("API_KEY is not set, checking against the development key")
	}

	// start CLI
	cli := commandLine{
		gate: apikey.NewGate(conf.APIKey),
		out:  os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}
