package client

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	curbwise "github.com/curbwise/curbwise-go"
)

// telemetryHooks routes SDK telemetry into a zerolog console logger on
// stderr. Without --verbose only warnings and errors surface.
func telemetryHooks(verbose bool) curbwise.TelemetryHooks {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.WarnLevel)
	}
	return curbwise.TelemetryHooks{
		OnLogEntry: func(_ context.Context, entry curbwise.LogEntry) {
			evt := logger.Debug()
			if entry.Level == curbwise.LogLevelError {
				evt = logger.Error()
			}
			evt.Fields(entry.Fields).Msg(entry.Message)
		},
		OnHTTPResponse: func(_ context.Context, req *http.Request, resp *http.Response, err error, latency time.Duration) {
			evt := logger.Debug().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Dur("latency", latency)
			if err != nil {
				logger.Warn().Err(err).Str("path", req.URL.Path).Msg("request failed")
				return
			}
			evt.Int("status", resp.StatusCode).Msg("request")
		},
	}
}
