// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"strings"

	"github.com/go-resty/resty/v2"
)

// restyLogger routes resty's printf-style diagnostics into zerolog.
type restyLogger struct {
	l *Logger
}

// Resty adapts l to the resty.Logger interface.
//
// resty reports every failed attempt itself; the relay logs the classified
// outcome separately, so resty's messages are kept at debug level.
func Resty(l *Logger) resty.Logger {
	return restyLogger{l: l}
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Debug().Str("component", "resty").Str("resty_level", "error").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Debug().Str("component", "resty").Str("resty_level", "warn").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
