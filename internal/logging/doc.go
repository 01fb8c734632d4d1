// Package logging provides the logging facade used across eztimer. It hides
// the zerolog backend behind a small Logger interface so the timing
// observers and the CLI can log structured fields without importing zerolog.
package logging
