package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/ragforge/catalog"
	"github.com/randalmurphal/ragforge/config"
	rferrors "github.com/randalmurphal/ragforge/errors"
	"github.com/randalmurphal/ragforge/prefs"
	"github.com/randalmurphal/ragforge/registry"
	"github.com/randalmurphal/ragforge/resolve"
)

// rootFlags holds every flag value before it is folded into the resolver
// input. Boolean toggles need Changed-tracking to tell "flag absent" from
// "flag false", so they stay out of Config until buildInput.
type rootFlags struct {
	template       string
	community      string
	llamaPack      string
	framework      string
	frontend       bool
	ui             string
	files          string
	engine         string
	vectorDB       string
	tools          []string
	model          string
	embeddingModel string
	provider       string
	providerKey    string
	llamaCloudKey  string
	useLlamaParse  bool
	eslint         bool
	postAction     string
	ci             bool
	catalogURL     string
	noPrefs        bool
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	cmd, _ := newRoot(logger)
	return cmd
}

func newRoot(logger *slog.Logger) (*cobra.Command, *rootFlags) {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:     "ragforge",
		Short:   "Scaffold a RAG chat application",
		Long:    "ragforge resolves a complete generation plan for a RAG chat app,\nasking only for what flags and preferences leave open.",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, flags, logger)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVar(&flags.template, "template", "", "app template (streaming, simple, community, llamapack)")
	f.StringVar(&flags.community, "community-template", "", "community template name (implies --template community)")
	f.StringVar(&flags.llamaPack, "llamapack", "", "LlamaPack name (implies --template llamapack)")
	f.StringVar(&flags.framework, "framework", "", "framework (nextjs, express, fastapi)")
	f.BoolVar(&flags.frontend, "frontend", false, "generate a frontend for the backend")
	f.StringVar(&flags.ui, "ui", "", "frontend UI (html, shadcn)")
	f.StringVar(&flags.files, "files", "", "data file or folder to index")
	f.StringVar(&flags.engine, "engine", "", "chat engine (simple, context)")
	f.StringVar(&flags.vectorDB, "vector-db", "", "vector database (none, mongo, pg, pinecone)")
	f.StringSliceVar(&flags.tools, "tools", nil, "agent tools to equip")
	f.StringVar(&flags.model, "model", "", "chat model")
	f.StringVar(&flags.embeddingModel, "embedding-model", "", "embedding model")
	f.StringVar(&flags.provider, "provider", "", "model provider (openai, anthropic)")
	f.StringVar(&flags.providerKey, "key", "", "model provider API key")
	f.StringVar(&flags.llamaCloudKey, "llamacloud-key", "", "LlamaCloud API key for enhanced parsing")
	f.BoolVar(&flags.useLlamaParse, "use-llamaparse", false, "parse documents with LlamaParse")
	f.BoolVar(&flags.eslint, "eslint", false, "add ESLint to the generated project")
	f.StringVar(&flags.postAction, "post-action", "", "what to do after generation (none, vscode, dependencies, run)")
	f.BoolVar(&flags.ci, "ci", false, "batch mode: never prompt, resolve from preferences and defaults")
	f.StringVar(&flags.catalogURL, "catalog", "", "alternate template catalog URL (GitHub or GitLab)")
	f.BoolVar(&flags.noPrefs, "no-prefs", false, "ignore and do not write stored preferences")

	return cmd, flags
}

func runRoot(cmd *cobra.Command, flags *rootFlags, logger *slog.Logger) error {
	in, err := buildInput(cmd, flags)
	if err != nil {
		return err
	}

	store, err := openStore(flags, logger)
	if err != nil {
		return err
	}

	opts := []resolve.Option{
		resolve.WithStore(store),
		resolve.WithLogger(logger),
	}
	if flags.catalogURL != "" {
		provider, err := registry.ProviderFromURL(flags.catalogURL)
		if err != nil {
			return err
		}
		opts = append(opts, resolve.WithRegistry(provider))
	}

	resolver := resolve.New(opts...)
	cfg, err := resolver.Resolve(cmd.Context(), in)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

// enumFlags pairs each enum-valued flag with its allowed values. Empty
// means unset and is always allowed; resolution fills the field later.
func enumFlags(flags *rootFlags) []struct {
	flag    string
	value   string
	allowed []string
} {
	return []struct {
		flag    string
		value   string
		allowed []string
	}{
		{"template", flags.template, []string{"streaming", "simple", "community", "llamapack"}},
		{"framework", flags.framework, []string{"nextjs", "express", "fastapi"}},
		{"ui", flags.ui, []string{"html", "shadcn"}},
		{"engine", flags.engine, []string{"simple", "context"}},
		{"vector-db", flags.vectorDB, []string{"none", "mongo", "pg", "pinecone"}},
		{"provider", flags.provider, []string{"openai", "anthropic"}},
		{"post-action", flags.postAction, []string{"none", "vscode", "dependencies", "run"}},
	}
}

func validateFlags(flags *rootFlags) error {
	for _, c := range enumFlags(flags) {
		if c.value == "" {
			continue
		}
		ok := false
		for _, a := range c.allowed {
			if c.value == a {
				ok = true
				break
			}
		}
		if !ok {
			return rferrors.NewInvalidFlagError(c.flag, c.value, c.allowed)
		}
	}
	return nil
}

// buildInput folds flag values into resolver input, honoring
// Changed-tracking for the boolean toggles.
func buildInput(cmd *cobra.Command, flags *rootFlags) (resolve.Input, error) {
	if err := validateFlags(flags); err != nil {
		return resolve.Input{}, err
	}

	cfg := config.Config{
		Template:          config.Template(flags.template),
		CommunityTemplate: flags.community,
		LlamaPack:         flags.llamaPack,
		Framework:         config.Framework(flags.framework),
		UI:                config.UI(flags.ui),
		Engine:            config.Engine(flags.engine),
		VectorDB:          config.VectorDB(flags.vectorDB),
		Model:             flags.model,
		EmbeddingModel:    flags.embeddingModel,
		Provider:          config.ModelProvider(flags.provider),
		ProviderKey:       flags.providerKey,
		LlamaCloudKey:     flags.llamaCloudKey,
		PostAction:        config.PostAction(flags.postAction),
	}

	if cfg.Template == "" {
		switch {
		case flags.community != "":
			cfg.Template = config.TemplateCommunity
		case flags.llamaPack != "":
			cfg.Template = config.TemplateLlamaPack
		}
	}

	if cmd.Flags().Changed("frontend") {
		v := flags.frontend
		cfg.Frontend = &v
	}
	if cmd.Flags().Changed("eslint") {
		v := flags.eslint
		cfg.ESLint = &v
	}
	if cmd.Flags().Changed("tools") {
		tools := make([]config.Tool, 0, len(flags.tools))
		for _, name := range flags.tools {
			tool, ok := catalog.ToolByName(strings.TrimSpace(name))
			if !ok {
				known := make([]string, 0, len(catalog.Tools()))
				for _, t := range catalog.Tools() {
					known = append(known, t.Name)
				}
				return resolve.Input{}, rferrors.NewInvalidFlagError("tools", name, known)
			}
			tools = append(tools, tool)
		}
		cfg.Tools = tools
	}

	env := resolve.EnvFromProcess()
	if flags.ci {
		env.CI = true
	}

	in := resolve.Input{
		Config:    cfg,
		FilesPath: flags.files,
		Env:       env,
	}

	if cmd.Flags().Changed("use-llamaparse") {
		// The data source may only come into existence during resolution,
		// so the parsing decision rides along separately.
		v := flags.useLlamaParse
		in.LlamaParse = &v
	}

	return in, nil
}

// openStore selects the preference store: the YAML store under the user
// config dir, or an in-memory one when preferences are disabled. A store
// that cannot be opened degrades to in-memory with a warning rather than
// failing the run.
func openStore(flags *rootFlags, logger *slog.Logger) (prefs.Store, error) {
	if flags.noPrefs {
		return prefs.NewMemStore(), nil
	}
	store, err := prefs.NewYAMLStore()
	if err != nil {
		logger.Warn("preferences unavailable, continuing without", "error", err)
		return prefs.NewMemStore(), nil
	}
	return store, nil
}
