// Package pipeline wires the classification rules and the action-resolution
// protocol into the two dataset pipelines: cleanup (drop useless columns and
// rows) and preprocess (coerce boolean-encoded columns). Both mutate the
// dataset in place and never fail: a malformed or unanswerable instruction
// degrades to "select nothing" for that rule.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aayushsanghavi/dsbox/internal/action"
	"github.com/aayushsanghavi/dsbox/internal/classify"
	"github.com/aayushsanghavi/dsbox/internal/dataset"
)

// Options configures a cleanup run.
type Options struct {
	// Auto applies the default action to every candidate set without
	// prompting.
	Auto bool
	// ColumnThreshold is the missing-value fraction for the column rule.
	ColumnThreshold float64
	// RowThreshold is the missing-value fraction for the row rule.
	RowThreshold float64
	// Target names the label column exempted from the row rule's tally.
	// Empty selects the last column by position.
	Target string
}

// DefaultOptions returns the automatic-mode defaults.
func DefaultOptions() Options {
	return Options{
		Auto:            true,
		ColumnThreshold: classify.DefaultMissingThreshold,
		RowThreshold:    classify.DefaultMissingThreshold,
	}
}

// Cleaner runs the cleanup pipeline.
type Cleaner struct {
	log  zerolog.Logger
	ask  action.Prompter
	opts Options
}

// NewCleaner builds a Cleaner. The prompter is only consulted when
// opts.Auto is false.
func NewCleaner(logger zerolog.Logger, ask action.Prompter, opts Options) *Cleaner {
	return &Cleaner{log: logger, ask: ask, opts: opts}
}

// Run cleans the dataset in place: duplicate rows go unconditionally, then
// single-value, identifier and majority-missing columns are classified and
// resolved in order and dropped as one set, then majority-missing rows are
// classified against the already-mutated dataset and dropped.
func (c *Cleaner) Run(ds *dataset.Dataset) {
	log := c.log.With().Str("run", uuid.NewString()).Logger()
	log.Debug().Int("rows", ds.NumRows()).Int("cols", ds.NumCols()).Bool("auto", c.opts.Auto).Msg("cleanup started")

	removed := ds.DropDuplicateRows()
	log.Debug().Int("removed", removed).Int("rows", ds.NumRows()).Msg("duplicate rows dropped")

	var drop []string
	drop = append(drop, c.selectColumns(log, classify.SingleValueColumns(ds), "have only one distinct value")...)
	drop = append(drop, c.selectColumns(log, classify.IdentifierColumns(ds), "are potential numeric identifiers")...)
	drop = append(drop, c.selectColumns(log, classify.MajorityMissingColumns(ds, c.opts.ColumnThreshold), "have majority missing values")...)

	// Deduplicate and re-check existence: an explicit answer may repeat a
	// name across rules.
	final := drop[:0]
	seen := map[string]bool{}
	for _, name := range drop {
		if !seen[name] && ds.HasColumn(name) {
			seen[name] = true
			final = append(final, name)
		}
	}
	if len(final) > 0 {
		log.Debug().Strs("columns", final).Msg("dropping columns")
		ds.DropColumns(final)
	}
	log.Debug().Int("rows", ds.NumRows()).Int("cols", ds.NumCols()).Msg("column cleanup done")

	target := c.opts.Target
	if target == "" {
		if names := ds.Columns(); len(names) > 0 {
			target = names[len(names)-1]
		}
	}
	rows := c.selectRows(log, classify.MajorityMissingRows(ds, target, c.opts.RowThreshold), target)
	if len(rows) > 0 {
		log.Debug().Ints("rows", rows).Msg("dropping rows")
		ds.DropRows(rows)
	}
	log.Debug().Int("rows", ds.NumRows()).Int("cols", ds.NumCols()).Msg("cleanup complete")
}

// selectColumns resolves the action for one column rule's candidates.
func (c *Cleaner) selectColumns(log zerolog.Logger, candidates []string, reason string) []string {
	if len(candidates) == 0 {
		return nil
	}
	log.Debug().Strs("candidates", candidates).Msg("columns " + reason)
	if c.opts.Auto {
		return candidates
	}
	prompt := fmt.Sprintf("Columns %v %s. Actions -> DROP_ALL, NO_OP, <comma separated column names> : ", candidates, reason)
	answer, err := c.ask.Ask(prompt)
	if err != nil {
		log.Error().Err(err).Msg("prompt failed, skipping rule")
		return nil
	}
	inst := action.Parse(answer, action.DropAllKeyword)
	selected := action.ResolveColumns(inst, candidates)
	if inst.Variant == action.Explicit && len(selected) == 0 {
		log.Error().Str("answer", answer).Msg("invalid action, expected DROP_ALL, NO_OP or comma separated column names")
	}
	return selected
}

// selectRows resolves the action for the row rule's candidates.
func (c *Cleaner) selectRows(log zerolog.Logger, candidates []int, target string) []int {
	if len(candidates) == 0 {
		return nil
	}
	log.Debug().Ints("candidates", candidates).Str("target", target).Msg("rows have majority missing values")
	if c.opts.Auto {
		return candidates
	}
	prompt := fmt.Sprintf("Rows %v have majority missing values. Actions -> DROP_ALL, NO_OP, <comma separated row indices> : ", candidates)
	answer, err := c.ask.Ask(prompt)
	if err != nil {
		log.Error().Err(err).Msg("prompt failed, skipping rule")
		return nil
	}
	inst := action.Parse(answer, action.DropAllKeyword)
	selected := action.ResolveRows(inst, candidates)
	if inst.Variant == action.Explicit && len(selected) == 0 {
		log.Error().Str("answer", answer).Msg("invalid action, expected DROP_ALL, NO_OP or comma separated row indices")
	}
	return selected
}
