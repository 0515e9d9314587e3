// Package action implements the textual action-resolution protocol: parsing
// an operator instruction into a tagged variant and resolving it against a
// candidate set. Malformed input never fails; it degrades to an empty
// selection.
package action

import (
	"strconv"
	"strings"
)

// Variant discriminates the parsed instruction forms.
type Variant int

const (
	// ApplyAll selects every candidate.
	ApplyAll Variant = iota
	// NoOp selects nothing.
	NoOp
	// Explicit selects the listed candidates only.
	Explicit
)

// Instruction is a parsed operator instruction.
type Instruction struct {
	Variant Variant
	Items   []string
}

// NoOpKeyword is the instruction keyword selecting nothing.
const NoOpKeyword = "NO_OP"

// Apply-all keywords differ per call site: cleanup drops, preprocess updates.
const (
	DropAllKeyword   = "DROP_ALL"
	UpdateAllKeyword = "UPDATE_ALL"
)

// Parse turns instruction text into an Instruction. The applyKeyword and
// NO_OP are matched case-insensitively; any other text is split on commas
// into an explicit item list with surrounding whitespace trimmed and empty
// tokens dropped.
func Parse(text, applyKeyword string) Instruction {
	trimmed := strings.TrimSpace(text)
	if strings.EqualFold(trimmed, applyKeyword) {
		return Instruction{Variant: ApplyAll}
	}
	if strings.EqualFold(trimmed, NoOpKeyword) {
		return Instruction{Variant: NoOp}
	}
	var items []string
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			items = append(items, token)
		}
	}
	return Instruction{Variant: Explicit, Items: items}
}

// ResolveColumns maps an instruction to the concrete column subset to act
// on. Explicit items not present in candidates are silently dropped.
func ResolveColumns(inst Instruction, candidates []string) []string {
	switch inst.Variant {
	case ApplyAll:
		return append([]string(nil), candidates...)
	case NoOp:
		return nil
	}
	valid := map[string]bool{}
	for _, c := range candidates {
		valid[c] = true
	}
	var out []string
	seen := map[string]bool{}
	for _, item := range inst.Items {
		if valid[item] && !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// ResolveRows maps an instruction to the concrete row-index subset to act
// on. Explicit items must parse as integers and be present in candidates;
// anything else is silently dropped, which also discards out-of-range
// indices since candidates only hold current rows.
func ResolveRows(inst Instruction, candidates []int) []int {
	switch inst.Variant {
	case ApplyAll:
		return append([]int(nil), candidates...)
	case NoOp:
		return nil
	}
	valid := map[int]bool{}
	for _, c := range candidates {
		valid[c] = true
	}
	var out []int
	seen := map[int]bool{}
	for _, item := range inst.Items {
		idx, err := strconv.Atoi(item)
		if err != nil {
			continue
		}
		if valid[idx] && !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	return out
}
