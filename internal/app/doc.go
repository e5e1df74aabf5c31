// Package app wires application dependencies for the CLI.
//
// It resolves Config from flags, the environment and an optional .env file,
// builds the dataset store and rate services into a Wire, and exposes the
// operations the commands run: Calc, Explain and Fingerprints.
package app
