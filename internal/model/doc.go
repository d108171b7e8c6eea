// Package model defines the error and exit-code types shared across the
// begone CLI.
//
// Per-directory failures during a cleaning pass are logged and counted,
// never surfaced as errors; CLIError exists for the small class of fatal
// startup problems (e.g. the working directory cannot be resolved) that
// must terminate the process with a non-zero exit code.
package model
