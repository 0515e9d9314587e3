package commands

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aayushsanghavi/dsbox/internal/action"
	"github.com/aayushsanghavi/dsbox/internal/pipeline"
)

// NewPreprocessCmd builds and returns the 'preprocess' cobra command.
func NewPreprocessCmd() *cobra.Command {
	var outputFile string
	var auto bool

	cmd := &cobra.Command{
		Use:   "preprocess <data.csv>",
		Short: "Rewrite boolean-encoded columns to true/false",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag("output", cmd.Flags().Lookup("output")); err != nil {
				return err
			}
			return runPreprocess(args[0], viper.GetString("output"), auto)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().BoolVar(&auto, "auto", false, "Apply the default action without prompting")
	return cmd
}

// runPreprocess is the entry point for the preprocess command.
func runPreprocess(dataPath, outputPath string, auto bool) error {
	log.Debug().Str("data", dataPath).Str("output", outputPath).Bool("auto", auto).Msg("preprocess started")

	ds, err := loadDataset(dataPath)
	if err != nil {
		return err
	}

	prompter := &action.TerminalPrompter{In: os.Stdin, Out: os.Stderr}
	pipeline.NewPreprocessor(log.Logger, prompter, auto).Run(ds)

	return writeDataset(ds, outputPath)
}
