// Package commands defines the slcsp CLI and wires dependencies for subcommands.
//
// Commands
//
//   - calc         Write the zipcode,rate report (the default)
//   - explain      Show how each target's rate was decided
//   - fingerprint  Print a short fingerprint of each input file
//
// # Implementation
//
// The root command loads the optional .env file, sets up logging and builds
// the app (dataset store plus rate services) before any subcommand runs, so
// handlers share one resolved configuration.
package commands
