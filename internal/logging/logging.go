// SPDX-License-Identifier: MIT
// Package: graphpoet/internal/logging
//
// logging.go: logger construction for the CLI.

// Package logging builds the charmbracelet/log logger shared by the CLI.
// Library packages receive it explicitly through options; there is no
// process-wide logger.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Prefix tags every line written by the CLI logger.
const Prefix = "graphpoet"

// New returns a logger writing to w at the named level
// ("debug", "info", "warn", "error").
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}
