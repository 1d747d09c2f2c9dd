package prompt

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Choice is one selectable option. Value is what lands in the plan; Label is
// what the operator sees.
type Choice struct {
	Value string
	Label string
}

// NewChoice builds a choice whose label is derived from the value.
func NewChoice(value string) Choice {
	return Choice{Value: value, Label: labelFor(value)}
}

// Choices builds a choice list from plain values.
func Choices(values ...string) []Choice {
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		out = append(out, NewChoice(v))
	}
	return out
}

var titler = cases.Title(language.English)

// labelFor turns a plan value like "llamapack" or "data-source" into a
// display label.
func labelFor(value string) string {
	return titler.String(strings.NewReplacer("-", " ", "_", " ").Replace(value))
}

// Prompter asks the operator questions. Every call may block indefinitely on
// human input and may return errors.ErrAborted when the operator cancels.
type Prompter interface {
	// Select asks a single-choice question and returns the chosen value.
	Select(ctx context.Context, question string, choices []Choice, def string) (string, error)

	// MultiSelect asks a multi-choice question and returns the chosen values.
	MultiSelect(ctx context.Context, question string, choices []Choice, def []string) ([]string, error)

	// Input asks a free-text question.
	Input(ctx context.Context, question, def string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, question string, def bool) (bool, error)
}
