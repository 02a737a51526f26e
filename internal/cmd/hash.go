package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gofindup/findup/internal/fsscan"
	"github.com/gofindup/findup/internal/hasher"
)

// NewHashCmd creates the hash subcommand, exposing the content digest
// primitives directly.
func NewHashCmd() *cobra.Command {
	var (
		algo      string
		signature bool
		exclude   []string
	)

	cmd := &cobra.Command{
		Use:   "hash PATH...",
		Short: "Compute content digests for files or directory trees",
		Long: `Compute the content digest of each PATH.

With --signature, directory arguments produce a single deterministic
digest covering every readable file in the tree (sorted by relative
path), useful for comparing whole directories.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, err := hasher.ParseAlgorithm(algo)
			if err != nil {
				return err
			}

			var excludeNames []string
			if cmd.Flags().Changed("exclude") {
				excludeNames = exclude
			}

			out := cmd.OutOrStdout()
			for _, path := range args {
				info, err := os.Stat(path)
				if err != nil {
					return err
				}

				var digest string
				switch {
				case info.IsDir() && signature:
					digest, err = algorithm.TreeSignature(cmd.Context(), path, fsscan.ExcludeSet(excludeNames))
				case info.IsDir():
					return fmt.Errorf("%s is a directory (use --signature for tree digests)", path)
				default:
					digest, err = algorithm.File(cmd.Context(), path)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %s\n", digest, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", string(hasher.DefaultAlgorithm), "Hash algorithm: xxh64, blake3 or sha256")
	cmd.Flags().BoolVar(&signature, "signature", false, "Digest whole directory trees")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directory names to skip in tree signatures")

	return cmd
}
