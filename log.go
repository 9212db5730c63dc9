// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package-level logger shared by every Manager, following the same pattern
// Consensys-gnark uses for its own logger package: a package variable backed
// by zerolog, overridable with SetLogger and silenceable with DisableLogging.
package pdd

import (
	"os"

	"github.com/rs/zerolog"
)

var pkgLogger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	pkgLogger = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.WarnLevel)
}

// SetLogger overrides the logger used by every future Manager.
func SetLogger(l zerolog.Logger) {
	pkgLogger = l
}

// DisableLogging silences every future Manager's logger.
func DisableLogging() {
	pkgLogger = zerolog.Nop()
}

// Logger returns the package-level logger.
func Logger() zerolog.Logger {
	return pkgLogger
}
