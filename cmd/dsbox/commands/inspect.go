package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aayushsanghavi/dsbox/internal/classify"
)

// NewInspectCmd builds and returns the 'inspect' cobra command.
func NewInspectCmd() *cobra.Command {
	var outputFile string
	var threshold, rowThreshold float64
	var target string

	cmd := &cobra.Command{
		Use:   "inspect <data.csv>",
		Short: "Report cleanup candidates without modifying the dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], outputFile, threshold, rowThreshold, target)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().Float64Var(&threshold, "threshold", classify.DefaultMissingThreshold, "Missing-value fraction above which a column is flagged")
	cmd.Flags().Float64Var(&rowThreshold, "row-threshold", classify.DefaultMissingThreshold, "Missing-value fraction above which a row is flagged")
	cmd.Flags().StringVar(&target, "target", "", "Label column exempt from the row rule (default: last column)")
	return cmd
}

// runInspect is the entry point for the inspect command. It only classifies;
// the dataset is never mutated.
func runInspect(dataPath, outputPath string, threshold, rowThreshold float64, target string) error {
	log.Debug().Str("data", dataPath).Str("output", outputPath).Msg("inspect started")

	ds, err := loadDataset(dataPath)
	if err != nil {
		return err
	}

	if target == "" {
		if names := ds.Columns(); len(names) > 0 {
			target = names[len(names)-1]
		}
	}

	report := Report{
		Dataset: Candidates{
			Rows:                   ds.NumRows(),
			Columns:                ds.NumCols(),
			SingleValueColumns:     classify.SingleValueColumns(ds),
			IdentifierColumns:      classify.IdentifierColumns(ds),
			MajorityMissingColumns: classify.MajorityMissingColumns(ds, threshold),
			MajorityMissingRows:    classify.MajorityMissingRows(ds, target, rowThreshold),
			BooleanColumns:         classify.BooleanColumns(ds),
		},
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshalling yaml: %w", err)
	}

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

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	log.Debug().Msg("inspect complete")
	return nil
}
