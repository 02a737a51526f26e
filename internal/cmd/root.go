package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gofindup/findup/version"
)

// NewRootCmd creates the root cobra command for the findup CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := NewScanCmd()
	rootCmd.Use = "findup ROOT"
	rootCmd.Short = "findup - find and remove duplicate files"
	rootCmd.Long = `findup finds duplicate files under a directory tree.

Files are first grouped by size; only files sharing a size are content
hashed (xxhash64 by default, a fast non-cryptographic hash), so unique
files are never read. Duplicates can be reported, exported as JSON, or
deleted in place with a configurable retention policy.`
	rootCmd.Version = version.GetFullVersion()

	rootCmd.AddCommand(NewHashCmd())

	return rootCmd
}

func newLogger(quiet, verbose bool) *logrus.Logger {
	log := logrus.New()
	switch {
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
