package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aayushsanghavi/dsbox/internal/action"
	"github.com/aayushsanghavi/dsbox/internal/classify"
	"github.com/aayushsanghavi/dsbox/internal/dataset"
	"github.com/aayushsanghavi/dsbox/internal/pipeline"
)

// NewCleanupCmd builds and returns the 'cleanup' cobra command.
func NewCleanupCmd() *cobra.Command {
	var outputFile string
	opts := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "cleanup <data.csv>",
		Short: "Drop duplicate rows, useless columns and majority-missing data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bind the cobra flag into viper so it can be read uniformly.
			if err := viper.BindPFlag("output", cmd.Flags().Lookup("output")); err != nil {
				return err
			}
			return runCleanup(args[0], viper.GetString("output"), opts)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().BoolVar(&opts.Auto, "auto", false, "Apply the default action without prompting")
	cmd.Flags().Float64Var(&opts.ColumnThreshold, "threshold", classify.DefaultMissingThreshold, "Missing-value fraction above which a column is dropped")
	cmd.Flags().Float64Var(&opts.RowThreshold, "row-threshold", classify.DefaultMissingThreshold, "Missing-value fraction above which a row is dropped")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Label column exempt from the row rule (default: last column)")
	return cmd
}

// runCleanup is the entry point for the cleanup command.
func runCleanup(dataPath, outputPath string, opts pipeline.Options) error {
	log.Debug().Str("data", dataPath).Str("output", outputPath).Bool("auto", opts.Auto).Msg("cleanup started")

	ds, err := loadDataset(dataPath)
	if err != nil {
		return err
	}

	prompter := &action.TerminalPrompter{In: os.Stdin, Out: os.Stderr}
	pipeline.NewCleaner(log.Logger, prompter, opts).Run(ds)

	return writeDataset(ds, outputPath)
}

// loadDataset reads and parses a CSV file into a dataset.
func loadDataset(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	ds, err := dataset.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing data file %q: %w", path, err)
	}
	log.Debug().Int("rows", ds.NumRows()).Int("cols", ds.NumCols()).Msg("dataset loaded")
	return ds, nil
}

// writeDataset writes the dataset as CSV to the given path, or stdout when
// the path is empty.
func writeDataset(ds *dataset.Dataset, outputPath string) error {
	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file %q: %w", outputPath, err)
		}
		defer f.Close()
		out = f
		log.Debug().Str("path", outputPath).Msg("writing to file")
	}
	if err := ds.WriteCSV(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
