package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bikeshare/utils"
)

const affirmativeAnswer = "yes"

// Prompter asks questions on out and reads the answers, one per line, from in
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask prints the question and returns the answer lowercased and trimmed.
// io.EOF is returned when there is no more input.
func (p *Prompter) Ask(question string) (string, error) {
	_, _ = fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.ToLower(strings.TrimSpace(p.scanner.Text())), nil
}

// Choose asks until the answer is one of the options
func (p *Prompter) Choose(question string, options []string, invalidMessage string) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if utils.ContainsString(answer, options) {
			return answer, nil
		}
		_, _ = fmt.Fprintln(p.out, invalidMessage)
	}
}

// Confirm returns true only if the answer is yes
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return answer == affirmativeAnswer, nil
}
