package prompt

import "context"

// Script is a scripted Prompter for testing. Each func field overrides one
// question kind; unset funcs answer with the default. Calls records every
// question asked, in order.
type Script struct {
	SelectFunc      func(ctx context.Context, question string, choices []Choice, def string) (string, error)
	MultiSelectFunc func(ctx context.Context, question string, choices []Choice, def []string) ([]string, error)
	InputFunc       func(ctx context.Context, question, def string) (string, error)
	ConfirmFunc     func(ctx context.Context, question string, def bool) (bool, error)

	Calls []string
}

// Select implements Prompter.
func (s *Script) Select(ctx context.Context, question string, choices []Choice, def string) (string, error) {
	s.Calls = append(s.Calls, question)
	if s.SelectFunc != nil {
		return s.SelectFunc(ctx, question, choices, def)
	}
	return def, nil
}

// MultiSelect implements Prompter.
func (s *Script) MultiSelect(ctx context.Context, question string, choices []Choice, def []string) ([]string, error) {
	s.Calls = append(s.Calls, question)
	if s.MultiSelectFunc != nil {
		return s.MultiSelectFunc(ctx, question, choices, def)
	}
	return def, nil
}

// Input implements Prompter.
func (s *Script) Input(ctx context.Context, question, def string) (string, error) {
	s.Calls = append(s.Calls, question)
	if s.InputFunc != nil {
		return s.InputFunc(ctx, question, def)
	}
	return def, nil
}

// Confirm implements Prompter.
func (s *Script) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	s.Calls = append(s.Calls, question)
	if s.ConfirmFunc != nil {
		return s.ConfirmFunc(ctx, question, def)
	}
	return def, nil
}
