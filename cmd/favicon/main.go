// Command favicon draws the GX label on a transparent background and saves it as favicon.ico in the working directory.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/gxapp/favicon"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	r := favicon.NewRenderer(nil, logger)
	if err := r.Generate(os.Stdout, favicon.TransparentIcon, favicon.OutputPath); err != nil {
		logger.Fatal().Err(err).Msg("failed to generate favicon")
	}
}
