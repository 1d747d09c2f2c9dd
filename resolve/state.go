package resolve

import (
	"context"
	"os"
	"runtime"

	"github.com/randalmurphal/ragforge/config"
)

// Env carries the process-environment signals the resolver reads: batch
// mode, host OS, and provider credentials.
type Env struct {
	// CI suppresses every interactive prompt, forcing preference/default
	// resolution.
	CI bool

	// GOOS gates native file-dialog availability.
	GOOS string

	OpenAIKey     string
	AnthropicKey  string
	LlamaCloudKey string
}

// EnvFromProcess reads the environment signals from the running process.
func EnvFromProcess() Env {
	return Env{
		CI:            os.Getenv("CI") != "",
		GOOS:          runtime.GOOS,
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
		LlamaCloudKey: os.Getenv("LLAMA_CLOUD_API_KEY"),
	}
}

// Input is the partially-filled configuration handed to the resolver:
// CLI flags merged into Config, plus the direct data path and the
// environment signals.
type Input struct {
	Config config.Config

	// FilesPath is a data file or folder supplied directly. When set, the
	// engine is inferred as context-aware and no data-source prompt runs.
	FilesPath string

	// LlamaParse carries an explicit parsing decision for the data source
	// derived from FilesPath.
	LlamaParse *bool

	Env Env
}

// State is what flows through the resolution graph. It is a value; each
// step returns its updated copy.
type State struct {
	Cfg        config.Config
	FilesPath  string
	LlamaParse *bool
	Env        Env
}

// Step is one named resolution step. AppliesIf is the declarative gate;
// Run resolves the step's field. Keeping the gating in data rather than
// control flow lets ordering and conditions be tested independently.
type Step struct {
	Name      string
	AppliesIf func(State) bool
	Run       func(ctx context.Context, s State) (State, error)
}

// providerKey returns the primary model-provider key, from direct input
// first, then the process environment.
func providerKey(s State) string {
	if s.Cfg.ProviderKey != "" {
		return s.Cfg.ProviderKey
	}
	if s.Cfg.Provider == config.ProviderAnthropic {
		return s.Env.AnthropicKey
	}
	return s.Env.OpenAIKey
}

// llamaCloudKey returns the enhanced-parsing credential, from direct input
// first, then the process environment.
func llamaCloudKey(s State) string {
	if s.Cfg.LlamaCloudKey != "" {
		return s.Cfg.LlamaCloudKey
	}
	return s.Env.LlamaCloudKey
}
