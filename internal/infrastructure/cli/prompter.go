package cli

import (
	"strings"

	"github.com/chzyer/readline"

	"github.com/amantham20/aqs-go/internal/ports"
)

// Prompter reads interactive input with line editing via readline.
type Prompter struct{}

// NewPrompter constructs a readline-backed prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// ReadLine displays prompt and returns the entered line with surrounding
// whitespace trimmed. Ctrl-C and Ctrl-D surface as errors to the caller.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var _ ports.Prompter = (*Prompter)(nil)
