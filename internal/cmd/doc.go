// Package cmd provides the command-line interface for findup.
//
// The root command scans a directory tree for duplicate files; subcommands
// expose the hashing primitives directly. Commands are built with Cobra and
// executed through Fang from the program entry point.
package cmd
