package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/randalmurphal/ragforge/config"
	"github.com/randalmurphal/ragforge/models"
	"github.com/randalmurphal/ragforge/picker"
	"github.com/randalmurphal/ragforge/prefs"
	"github.com/randalmurphal/ragforge/prompt"
	"github.com/randalmurphal/ragforge/registry"
)

// FilePicker opens native file/folder dialogs. Satisfied by *picker.Picker.
type FilePicker interface {
	PickFile(ctx context.Context) (string, error)
	PickFolder(ctx context.Context) (string, error)
}

// ChatModelsFunc supplies the chat-model choices for a provider. apiKey may
// be empty.
type ChatModelsFunc func(ctx context.Context, p config.ModelProvider, apiKey string) []string

// Resolver turns a partial Input into a fully-resolved generation plan.
// It exclusively owns the in-progress config for the duration of one
// Resolve call; there is no sharing and no concurrency.
type Resolver struct {
	prompter   prompt.Prompter
	store      prefs.Store
	catalog    registry.Provider
	picker     FilePicker
	chatModels ChatModelsFunc
	log        *slog.Logger
}

// Option configures Resolver.
type Option func(*Resolver)

// WithPrompter sets the prompter. Defaults to a terminal prompter over
// stdin/stdout.
func WithPrompter(p prompt.Prompter) Option {
	return func(r *Resolver) { r.prompter = p }
}

// WithStore sets the preference store. Defaults to an in-memory store, so
// nothing persists unless the caller injects a real one.
func WithStore(s prefs.Store) Option {
	return func(r *Resolver) { r.store = s }
}

// WithRegistry sets the remote catalog provider.
func WithRegistry(p registry.Provider) Option {
	return func(r *Resolver) { r.catalog = p }
}

// WithPicker sets the native dialog picker.
func WithPicker(p FilePicker) Option {
	return func(r *Resolver) { r.picker = p }
}

// WithChatModels overrides the chat-model catalog lookup.
func WithChatModels(fn ChatModelsFunc) Option {
	return func(r *Resolver) { r.chatModels = fn }
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// New creates a resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		prompter:   prompt.NewTerminal(os.Stdin, os.Stdout),
		store:      prefs.NewMemStore(),
		catalog:    registry.NewGitHubProvider(""),
		picker:     picker.New(),
		chatModels: defaultChatModels,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// defaultChatModels serves the static catalog, upgraded to a live OpenAI
// listing when a key is available. A failed listing falls back to the
// static table; the catalog is a convenience, not a gate.
func defaultChatModels(ctx context.Context, p config.ModelProvider, apiKey string) []string {
	if p == config.ProviderOpenAI && apiKey != "" {
		if live, err := models.ListOpenAIChatModels(ctx, apiKey); err == nil && len(live) > 0 {
			return live
		}
	}
	return models.ChatModels(p)
}

// Resolve runs the resolution pipeline. Explicit input wins over stored
// preferences, which win over hardcoded defaults; prompts only happen
// outside CI mode. Any returned error is fatal for the run.
func (r *Resolver) Resolve(ctx context.Context, in Input) (config.Config, error) {
	state := State{
		Cfg:        in.Config,
		FilesPath:  in.FilesPath,
		LlamaParse: in.LlamaParse,
		Env:        in.Env,
	}
	if state.Cfg.Provider == "" {
		state.Cfg.Provider = config.ProviderOpenAI
	}

	state, err := r.run(ctx, state)
	if err != nil {
		return config.Config{}, err
	}

	if err := state.Cfg.Complete(); err != nil {
		return config.Config{}, fmt.Errorf("resolution incomplete: %w", err)
	}
	return state.Cfg, nil
}

// remember writes an interactive answer to the preference store. A failed
// write is logged, not fatal: preferences only exist to seed future runs.
func (r *Resolver) remember(key, value string) {
	if err := r.store.Set(key, value); err != nil {
		r.log.Warn("could not persist preference", "key", key, "error", err)
	}
}

// chooseFrom resolves a single-choice field: preference-or-default in CI,
// prompt otherwise. A stored preference only applies while it is still a
// valid choice.
func (r *Resolver) chooseFrom(ctx context.Context, s State, key, question string, choices []prompt.Choice, def string) (string, error) {
	if s.Env.CI {
		if v, ok := r.store.Get(key); ok && hasChoice(choices, v) {
			return v, nil
		}
		return def, nil
	}

	v, err := r.prompter.Select(ctx, question, choices, def)
	if err != nil {
		return "", err
	}
	r.remember(key, v)
	return v, nil
}

// choose is chooseFrom over plain values.
func (r *Resolver) choose(ctx context.Context, s State, key, question string, values []string, def string) (string, error) {
	return r.chooseFrom(ctx, s, key, question, prompt.Choices(values...), def)
}

// confirm resolves a boolean toggle with the same cascade as chooseFrom.
func (r *Resolver) confirm(ctx context.Context, s State, key, question string, def bool) (bool, error) {
	if s.Env.CI {
		if v, ok := r.store.Get(key); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				return b, nil
			}
		}
		return def, nil
	}

	v, err := r.prompter.Confirm(ctx, question, def)
	if err != nil {
		return false, err
	}
	r.remember(key, strconv.FormatBool(v))
	return v, nil
}

// inputText resolves a free-text field with the same cascade as chooseFrom.
func (r *Resolver) inputText(ctx context.Context, s State, key, question, def string) (string, error) {
	if s.Env.CI {
		if v, ok := r.store.Get(key); ok {
			return v, nil
		}
		return def, nil
	}

	v, err := r.prompter.Input(ctx, question, def)
	if err != nil {
		return "", err
	}
	if v != "" {
		r.remember(key, v)
	}
	return v, nil
}

func hasChoice(choices []prompt.Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
