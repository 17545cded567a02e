// Package logging builds the slog loggers used across proofsheet.
//
// The console format is a tinted human-readable stream (color only on
// terminals); the json format is line-delimited structured output for
// machine consumption.
package logging
