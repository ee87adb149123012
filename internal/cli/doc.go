// Package cli implements the command-line interface for degree-offerings.
//
// The cli package provides the Cobra root command, binds its flags and the
// DEGREE_OFFERINGS_* environment variables through Viper, and runs the pipeline:
// fetch the degrees page, extract the programs table, reconcile it into one
// record per program and write the dated snapshot. A short run summary is
// printed as text or JSON.
package cli
