// Package cmd implements the command-line interface for the courier
// exchange tool. It provides a hierarchical command structure with one
// command per exchange role.
//
// The package is organized into several subpackages:
//
//   - send: Command for the sender role (serialize and transmit the exchange)
//   - receive: Command for the receiver role (accept one sender and dispose the exchange)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See courier -help for a list of all commands.
package cmd
