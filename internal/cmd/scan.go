package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gofindup/findup/internal/dupfind"
	"github.com/gofindup/findup/internal/hasher"
	"github.com/gofindup/findup/internal/progress"
	"github.com/gofindup/findup/internal/report"
)

// NewScanCmd creates the scan command, which is also the root behavior.
func NewScanCmd() *cobra.Command {
	var (
		autoDelete bool
		keep       string
		output     string
		compress   bool
		algo       string
		workers    int
		exclude    []string
		quiet      bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "scan ROOT",
		Short: "Scan a directory tree for duplicate files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, err := hasher.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			policy, err := dupfind.ParseRetentionPolicy(keep)
			if err != nil {
				return err
			}

			log := newLogger(quiet, verbose)
			var prog progress.BarProgressTracker = progress.NoopBarProgressTracker{}
			var collectProg progress.SpinnerProgressTracker = progress.NoopSpinnerProgressTracker{}
			if !quiet {
				prog = progress.NewLogBarTracker(log)
				collectProg = progress.NewLogSpinnerTracker(log)
			}

			// Flags default to nil so the default exclusion set applies;
			// any explicit --exclude replaces it entirely.
			var excludeNames []string
			if cmd.Flags().Changed("exclude") {
				excludeNames = exclude
			}

			result, err := dupfind.Find(cmd.Context(), dupfind.Options{
				Root:            args[0],
				Algorithm:       algorithm,
				Workers:         workers,
				Exclude:         excludeNames,
				Progress:        prog,
				CollectProgress: collectProg,
				Log:             log,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report.Print(out, result)

			if output != "" && len(result.Groups) > 0 {
				doc := report.New(result)
				written, err := doc.WriteFile(output, compress)
				if err != nil {
					return fmt.Errorf("export results: %w", err)
				}
				fmt.Fprintf(out, "Results saved to %s\n", written)
			}

			var deletion *dupfind.DeleteSummary
			if autoDelete && len(result.Groups) > 0 {
				summary, err := dupfind.DeleteDuplicates(result.Groups, policy, log)
				if err != nil {
					log.WithError(err).Warn("some duplicates could not be deleted")
				}
				deletion = &summary
			}

			report.PrintSummary(out, result, deletion)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&autoDelete, "auto-delete", "a", false, "Delete duplicates, keeping one file per group")
	cmd.Flags().StringVar(&keep, "keep", "first", "Retention policy for --auto-delete: first or newest")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write duplicate groups to a JSON file")
	cmd.Flags().BoolVar(&compress, "compress", false, "zstd-compress the JSON export")
	cmd.Flags().StringVar(&algo, "algo", string(hasher.DefaultAlgorithm), "Hash algorithm: xxh64, blake3 or sha256")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Hashing workers (0 = number of CPUs, capped at 8)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directory names to skip (replaces the default set)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress and informational logging")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
