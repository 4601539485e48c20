package tricks

import (
	"io"
	"strings"
)

// scriptedConsole answers prompts from a fixed script and records output.
type scriptedConsole struct {
	names    string
	answers  []string
	prompts  []string
	messages []string
}

func newScriptedConsole(names string, answers ...string) *scriptedConsole {
	return &scriptedConsole{names: names, answers: answers}
}

func (c *scriptedConsole) RequestPlayerNames() (string, error) {
	return c.names, nil
}

func (c *scriptedConsole) RequestCardIndex(prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if len(c.answers) == 0 {
		return "", io.EOF
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func (c *scriptedConsole) Display(message string) {
	c.messages = append(c.messages, message)
}

func (c *scriptedConsole) displayed(substr string) int {
	n := 0
	for _, m := range c.messages {
		if strings.Contains(m, substr) {
			n++
		}
	}
	return n
}
