// Package cli defines the venvlink command. It parses flags, layers them
// with the environment and config file, runs preflight checks, and hands off
// to the lifecycle manager. Business logic lives in the internal packages;
// this package only handles wiring, I/O formatting and exit behavior.
package cli
