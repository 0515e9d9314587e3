package action

import (
	"bufio"
	"fmt"
	"io"
)

// Prompter obtains an instruction from the operator. Implementations block
// until an answer is available.
type Prompter interface {
	Ask(prompt string) (string, error)
}

// TerminalPrompter reads answers line by line from In, writing prompts to
// Out. Out should be stderr when stdout carries the cleaned dataset.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

// Ask writes the prompt and returns the next input line.
func (p *TerminalPrompter) Ask(prompt string) (string, error) {
	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.In)
	}
	if _, err := fmt.Fprint(p.Out, prompt); err != nil {
		return "", err
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// ScriptedPrompter replays a fixed answer list, one per Ask call. Used by
// tests and anywhere an interactive session is simulated.
type ScriptedPrompter struct {
	Answers []string

	next int
}

// Ask returns the next scripted answer, or io.EOF when exhausted.
func (p *ScriptedPrompter) Ask(string) (string, error) {
	if p.next >= len(p.Answers) {
		return "", io.EOF
	}
	answer := p.Answers[p.next]
	p.next++
	return answer, nil
}
