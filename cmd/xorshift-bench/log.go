package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func logInit(conf config) {
	level := zerolog.ErrorLevel
	switch conf.logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "verbose", "verb":
		level = zerolog.TraceLevel
	case "notice", "info":
		level = zerolog.InfoLevel
	case "warning", "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	case "quiet", "silent":
		level = zerolog.Disabled
	default:
		fmt.Fprintf(os.Stderr, "invalid -loglevel: %s\n", conf.logLevel)
		os.Exit(1)
	}
	log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05.000"
	})).Level(level).With().Timestamp().Logger()
}
