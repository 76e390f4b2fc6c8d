// Package cli assembles the cio root command, binding configuration loading,
// structured logging, and the reconciliation subcommands.
package cli
