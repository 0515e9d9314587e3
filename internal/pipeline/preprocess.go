package pipeline

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aayushsanghavi/dsbox/internal/action"
	"github.com/aayushsanghavi/dsbox/internal/classify"
	"github.com/aayushsanghavi/dsbox/internal/dataset"
)

// Preprocessor runs the boolean-coercion pipeline.
type Preprocessor struct {
	log  zerolog.Logger
	ask  action.Prompter
	auto bool
}

// NewPreprocessor builds a Preprocessor. The prompter is only consulted
// when auto is false.
func NewPreprocessor(logger zerolog.Logger, ask action.Prompter, auto bool) *Preprocessor {
	return &Preprocessor{log: logger, ask: ask, auto: auto}
}

// Run finds columns whose values are booleans in disguise, builds one
// substitution table from their distinct values, applies it dataset-wide and
// coerces the confirmed columns to bool.
func (p *Preprocessor) Run(ds *dataset.Dataset) {
	log := p.log.With().Str("run", uuid.NewString()).Logger()
	log.Debug().Int("rows", ds.NumRows()).Int("cols", ds.NumCols()).Bool("auto", p.auto).Msg("preprocess started")

	candidates := classify.BooleanColumns(ds)
	if len(candidates) == 0 {
		log.Debug().Msg("no boolean-encoded columns found")
		return
	}
	log.Debug().Strs("candidates", candidates).Msg("columns hold boolean-encoded values")

	selected := candidates
	if !p.auto {
		prompt := fmt.Sprintf("Columns %v hold boolean-encoded values. Actions -> UPDATE_ALL, NO_OP, <comma separated column names> : ", candidates)
		answer, err := p.ask.Ask(prompt)
		if err != nil {
			log.Error().Err(err).Msg("prompt failed, skipping rule")
			return
		}
		inst := action.Parse(answer, action.UpdateAllKeyword)
		selected = action.ResolveColumns(inst, candidates)
		if len(selected) == 0 {
			if inst.Variant == action.Explicit {
				log.Error().Str("answer", answer).Msg("invalid action, expected UPDATE_ALL, NO_OP or comma separated column names")
			}
			return
		}
	}

	mapping := classify.BooleanMapping(ds, selected)
	replacements := make(map[string]string, len(mapping))
	for raw, b := range mapping {
		replacements[raw] = strconv.FormatBool(b)
	}
	changed := ds.ReplaceValues(replacements)
	log.Debug().Int("cells", changed).Int("values", len(mapping)).Msg("boolean values substituted")

	for _, name := range selected {
		ds.Coerce(name, dataset.KindBool)
	}
	log.Debug().Strs("columns", selected).Msg("columns coerced to bool")
}
