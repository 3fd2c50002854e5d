// Package logging builds the structured slog loggers used across cfgchain.
// Output is JSON by default; LoggerConfig.Format selects the text handler for
// local debugging. The root package uses it when no logger is injected.
package logging
