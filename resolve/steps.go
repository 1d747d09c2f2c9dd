package resolve

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/randalmurphal/ragforge/catalog"
	"github.com/randalmurphal/ragforge/config"
	rferrors "github.com/randalmurphal/ragforge/errors"
	"github.com/randalmurphal/ragforge/models"
	"github.com/randalmurphal/ragforge/picker"
	"github.com/randalmurphal/ragforge/prefs"
	"github.com/randalmurphal/ragforge/prompt"
)

// Hardcoded defaults used when a field is unset and no preference exists.
const (
	DefaultTemplate   = config.TemplateStreaming
	DefaultUI         = config.UIShadcn
	DefaultDataOption = dataOptionExample
	DefaultVectorDB   = config.VectorDBNone
	DefaultPostAction = config.PostActionDeps
)

// Data-source prompt options. Each maps deterministically to an
// (engine, data source) pair.
const (
	dataOptionNone    = "none"
	dataOptionExample = "example"
	dataOptionFile    = "file"
	dataOptionFolder  = "folder"
	dataOptionWeb     = "web"
)

// steps returns the ordered resolution pipeline. Order matters: later
// steps read fields earlier steps resolved. Graph wiring in graph.go
// follows this order, with conditional routing after the template step.
func (r *Resolver) steps() []Step {
	return []Step{
		r.templateStep(),
		r.communityStep(),
		r.llamaPackStep(),
		r.frameworkStep(),
		r.frontendStep(),
		r.uiStep(),
		r.modelStep(),
		r.embeddingModelStep(),
		r.directFilesStep(),
		r.dataSourceStep(),
		r.dataSourceDefaultStep(),
		r.llamaParseStep(),
		r.webSourceStep(),
		r.vectorDBStep(),
		r.toolsStep(),
		r.providerKeyStep(),
		r.eslintStep(),
		r.postActionStep(),
	}
}

func (r *Resolver) templateStep() Step {
	return Step{
		Name:      "template",
		AppliesIf: func(s State) bool { return s.Cfg.Template == "" },
		Run: func(ctx context.Context, s State) (State, error) {
			values := make([]string, 0, 4)
			for _, t := range catalog.Templates() {
				values = append(values, string(t))
			}
			v, err := r.choose(ctx, s, prefs.KeyTemplate,
				"Which app template would you like to use?", values, string(DefaultTemplate))
			if err != nil {
				return s, err
			}
			s.Cfg.Template = config.Template(v)
			return s, nil
		},
	}
}

// communityStep short-circuits the pipeline: the selected community project
// is the only thing the generator needs, so the result carries nothing else.
func (r *Resolver) communityStep() Step {
	return Step{
		Name: "community",
		AppliesIf: func(s State) bool {
			return s.Cfg.Template == config.TemplateCommunity && s.Cfg.CommunityTemplate == ""
		},
		Run: func(ctx context.Context, s State) (State, error) {
			names, err := r.catalog.ListTemplates(ctx)
			if err != nil {
				return s, fmt.Errorf("fetch community templates: %w", err)
			}
			name, err := r.chooseRemote(ctx, s, prefs.KeyCommunity,
				"Which community template would you like to use?", names)
			if err != nil {
				return s, err
			}
			s.Cfg = config.Config{
				Template:          config.TemplateCommunity,
				CommunityTemplate: name,
			}
			return s, nil
		},
	}
}

func (r *Resolver) llamaPackStep() Step {
	return Step{
		Name: "llamapack",
		AppliesIf: func(s State) bool {
			return s.Cfg.Template == config.TemplateLlamaPack && s.Cfg.LlamaPack == ""
		},
		Run: func(ctx context.Context, s State) (State, error) {
			names, err := r.catalog.ListPacks(ctx)
			if err != nil {
				return s, fmt.Errorf("fetch llamapacks: %w", err)
			}
			name, err := r.chooseRemote(ctx, s, prefs.KeyLlamaPack,
				"Which LlamaPack would you like to use?", names)
			if err != nil {
				return s, err
			}
			s.Cfg.LlamaPack = name
			return s, nil
		},
	}
}

// chooseRemote resolves a selection from a freshly-fetched remote listing.
// There is no meaningful hardcoded default for remote entries, so batch mode
// takes the stored preference when it is still listed, else the first entry.
func (r *Resolver) chooseRemote(ctx context.Context, s State, key, question string, names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("%w: nothing to choose from", rferrors.ErrCatalogEmpty)
	}
	return r.choose(ctx, s, key, question, names, names[0])
}

func (r *Resolver) frameworkStep() Step {
	return Step{
		Name:      "framework",
		AppliesIf: func(s State) bool { return s.Cfg.Framework == "" },
		Run: func(ctx context.Context, s State) (State, error) {
			offered := catalog.Frameworks(s.Cfg.Template)
			values := make([]string, 0, len(offered))
			for _, f := range offered {
				values = append(values, string(f))
			}
			def := string(config.FrameworkFastAPI)
			if s.Cfg.Template == config.TemplateStreaming {
				def = string(config.FrameworkNextJS)
			}
			v, err := r.choose(ctx, s, prefs.KeyFramework,
				"Which framework would you like to use?", values, def)
			if err != nil {
				return s, err
			}
			s.Cfg.Framework = config.Framework(v)
			return s, nil
		},
	}
}

func (r *Resolver) frontendStep() Step {
	return Step{
		Name: "frontend",
		AppliesIf: func(s State) bool {
			return s.Cfg.Template == config.TemplateStreaming && s.Cfg.Frontend == nil
		},
		Run: func(ctx context.Context, s State) (State, error) {
			// The full-stack default already ships its frontend.
			if s.Cfg.Framework == config.FrameworkNextJS {
				enabled := false
				s.Cfg.Frontend = &enabled
				return s, nil
			}
			enabled, err := r.confirm(ctx, s, prefs.KeyFrontend,
				"Would you like to generate a frontend for your backend?", true)
			if err != nil {
				return s, err
			}
			s.Cfg.Frontend = &enabled
			return s, nil
		},
	}
}

func (r *Resolver) uiStep() Step {
	return Step{
		Name: "ui",
		AppliesIf: func(s State) bool {
			if s.Cfg.UI != "" {
				return false
			}
			return s.Cfg.Framework == config.FrameworkNextJS || s.Cfg.FrontendEnabled()
		},
		Run: func(ctx context.Context, s State) (State, error) {
			values := make([]string, 0, 2)
			for _, u := range catalog.UIs() {
				values = append(values, string(u))
			}
			v, err := r.choose(ctx, s, prefs.KeyUI,
				"Which UI would you like to use?", values, string(DefaultUI))
			if err != nil {
				return s, err
			}
			s.Cfg.UI = config.UI(v)
			return s, nil
		},
	}
}

func (r *Resolver) modelStep() Step {
	return Step{
		Name:      "model",
		AppliesIf: func(s State) bool { return s.Cfg.Model == "" },
		Run: func(ctx context.Context, s State) (State, error) {
			values := r.chatModels(ctx, s.Cfg.Provider, providerKey(s))
			def := models.DefaultChatModel(s.Cfg.Provider)
			if !hasValue(values, def) {
				values = append([]string{def}, values...)
			}
			v, err := r.choose(ctx, s, prefs.KeyModel,
				"Which model would you like to use?", values, def)
			if err != nil {
				return s, err
			}
			s.Cfg.Model = v
			return s, nil
		},
	}
}

func (r *Resolver) embeddingModelStep() Step {
	return Step{
		Name: "embedding-model",
		AppliesIf: func(s State) bool {
			return s.Cfg.Framework == config.FrameworkFastAPI && s.Cfg.EmbeddingModel == ""
		},
		Run: func(ctx context.Context, s State) (State, error) {
			v, err := r.choose(ctx, s, prefs.KeyEmbeddingModel,
				"Which embedding model would you like to use?",
				models.EmbeddingModels(s.Cfg.Provider),
				models.DefaultEmbeddingModel(s.Cfg.Provider))
			if err != nil {
				return s, err
			}
			s.Cfg.EmbeddingModel = v
			return s, nil
		},
	}
}

// directFilesStep consumes a data path supplied directly as input: the
// engine is context-aware by definition and the data source is derived from
// the path, with no prompt.
func (r *Resolver) directFilesStep() Step {
	return Step{
		Name:      "direct-files",
		AppliesIf: func(s State) bool { return s.FilesPath != "" },
		Run: func(ctx context.Context, s State) (State, error) {
			ds, err := sourceFromPath(s.FilesPath)
			if err != nil {
				return s, err
			}
			if s.LlamaParse != nil {
				ds.Config.UseLlamaParse = s.LlamaParse
			}
			s.Cfg.Engine = config.EngineContext
			s.Cfg.DataSource = ds
			return s, nil
		},
	}
}

// sourceFromPath stats a local path and derives the matching data source.
func sourceFromPath(path string) (*config.DataSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, rferrors.NewPathNotFoundError(path)
	}
	if info.IsDir() {
		return config.FolderSource(path), nil
	}
	if !catalog.IsSupportedFile(path) {
		return nil, rferrors.NewUnsupportedFileError(path, catalog.SupportedExtensions())
	}
	return config.FileSource(path), nil
}

func (r *Resolver) dataSourceStep() Step {
	return Step{
		Name:      "data-source",
		AppliesIf: func(s State) bool { return s.Cfg.Engine == "" },
		Run: func(ctx context.Context, s State) (State, error) {
			choices := []prompt.Choice{
				{Value: dataOptionNone, Label: "No data, just a simple chat"},
				{Value: dataOptionExample, Label: "Use an example PDF"},
			}
			// Native dialogs are interactive by nature, so they are never
			// offered in batch mode.
			if !s.Env.CI && picker.Supported(s.Env.GOOS) {
				choices = append(choices,
					prompt.Choice{Value: dataOptionFile, Label: "Use a local file (opens a dialog)"},
					prompt.Choice{Value: dataOptionFolder, Label: "Use a local folder (opens a dialog)"},
				)
			}
			if s.Cfg.Framework == config.FrameworkFastAPI {
				choices = append(choices, prompt.Choice{Value: dataOptionWeb, Label: "Crawl a website"})
			}

			v, err := r.chooseFrom(ctx, s, prefs.KeyDataSource,
				"Which data source would you like to use?", choices, DefaultDataOption)
			if err != nil {
				return s, err
			}
			return r.applyDataOption(ctx, s, v)
		},
	}
}

// applyDataOption maps a data-source choice to its (engine, data source)
// pair, invoking the native picker for the local options.
func (r *Resolver) applyDataOption(ctx context.Context, s State, option string) (State, error) {
	switch option {
	case dataOptionNone:
		s.Cfg.Engine = config.EngineSimple
		s.Cfg.DataSource = config.NoSource()
		return s, nil

	case dataOptionExample:
		s.Cfg.Engine = config.EngineContext
		s.Cfg.DataSource = config.FileSource(catalog.ExampleFilePath)
		return s, nil

	case dataOptionFile:
		path, err := r.picker.PickFile(ctx)
		if err != nil {
			return s, err
		}
		ds, err := sourceFromPath(path)
		if err != nil {
			return s, err
		}
		s.Cfg.Engine = config.EngineContext
		s.Cfg.DataSource = ds
		return s, nil

	case dataOptionFolder:
		path, err := r.picker.PickFolder(ctx)
		if err != nil {
			return s, err
		}
		if _, err := os.Stat(path); err != nil {
			return s, rferrors.NewPathNotFoundError(path)
		}
		s.Cfg.Engine = config.EngineContext
		s.Cfg.DataSource = config.FolderSource(path)
		return s, nil

	case dataOptionWeb:
		s.Cfg.Engine = config.EngineContext
		s.Cfg.DataSource = &config.DataSource{Type: config.DataSourceWeb}
		return s, nil

	default:
		return s, fmt.Errorf("unknown data source option %q", option)
	}
}

// dataSourceDefaultStep covers engine supplied directly without a data
// source: a fixed mapping, never a prompt.
func (r *Resolver) dataSourceDefaultStep() Step {
	return Step{
		Name: "data-source-default",
		AppliesIf: func(s State) bool {
			return s.Cfg.Engine != "" && s.Cfg.DataSource == nil
		},
		Run: func(ctx context.Context, s State) (State, error) {
			if s.Cfg.Engine == config.EngineSimple {
				s.Cfg.DataSource = config.NoSource()
			} else {
				s.Cfg.DataSource = config.FolderSource("")
			}
			return s, nil
		},
	}
}

func (r *Resolver) llamaParseStep() Step {
	return Step{
		Name: "llamaparse",
		AppliesIf: func(s State) bool {
			if s.Cfg.Framework != config.FrameworkFastAPI || s.Cfg.DataSource == nil {
				return false
			}
			t := s.Cfg.DataSource.Type
			if t != config.DataSourceFile && t != config.DataSourceFolder {
				return false
			}
			return !s.Cfg.DataSource.LlamaParseDecided()
		},
		Run: func(ctx context.Context, s State) (State, error) {
			var enabled bool
			if s.LlamaParse != nil {
				enabled = *s.LlamaParse
			} else {
				var err error
				enabled, err = r.confirm(ctx, s, prefs.KeyLlamaParse,
					"Would you like to use LlamaParse for better document parsing?", false)
				if err != nil {
					return s, err
				}
			}
			s.Cfg.DataSource.Config.UseLlamaParse = &enabled

			// Credentials are prompted, never stored or defaulted.
			if enabled && llamaCloudKey(s) == "" && !s.Env.CI {
				key, err := r.prompter.Input(ctx, "LLAMA_CLOUD_API_KEY (leave blank to set it later)", "")
				if err != nil {
					return s, err
				}
				s.Cfg.LlamaCloudKey = key
			}
			return s, nil
		},
	}
}

func (r *Resolver) webSourceStep() Step {
	return Step{
		Name: "web-source",
		AppliesIf: func(s State) bool {
			return s.Cfg.Framework == config.FrameworkFastAPI &&
				s.Cfg.DataSource != nil &&
				s.Cfg.DataSource.Type == config.DataSourceWeb &&
				s.Cfg.DataSource.Config.BaseURL == ""
		},
		Run: func(ctx context.Context, s State) (State, error) {
			raw, err := r.inputText(ctx, s, prefs.KeyWebBaseURL,
				"Which website would you like to crawl?", "")
			if err != nil {
				return s, err
			}
			base, err := NormalizeBaseURL(raw)
			if err != nil {
				return s, err
			}
			s.Cfg.DataSource.Config.BaseURL = base
			s.Cfg.DataSource.Config.Depth = 1
			return s, nil
		},
	}
}

func (r *Resolver) vectorDBStep() Step {
	return Step{
		Name: "vector-db",
		AppliesIf: func(s State) bool {
			return s.Cfg.Engine == config.EngineContext && s.Cfg.VectorDB == ""
		},
		Run: func(ctx context.Context, s State) (State, error) {
			offered := catalog.VectorDBs(s.Cfg.Framework)
			values := make([]string, 0, len(offered))
			for _, db := range offered {
				values = append(values, string(db))
			}
			v, err := r.choose(ctx, s, prefs.KeyVectorDB,
				"Would you like to use a vector database?", values, string(DefaultVectorDB))
			if err != nil {
				return s, err
			}
			s.Cfg.VectorDB = config.VectorDB(v)
			return s, nil
		},
	}
}

func (r *Resolver) toolsStep() Step {
	return Step{
		Name: "tools",
		AppliesIf: func(s State) bool {
			return s.Cfg.Framework == config.FrameworkFastAPI &&
				s.Cfg.Engine == config.EngineContext &&
				s.Cfg.Tools == nil
		},
		Run: func(ctx context.Context, s State) (State, error) {
			var names []string
			if s.Env.CI {
				if v, ok := r.store.Get(prefs.KeyTools); ok && v != "" {
					names = strings.Split(v, ",")
				}
			} else {
				choices := make([]prompt.Choice, 0, len(catalog.Tools()))
				for _, tool := range catalog.Tools() {
					choices = append(choices, prompt.Choice{Value: tool.Name, Label: tool.DisplayName})
				}
				var err error
				names, err = r.prompter.MultiSelect(ctx,
					"Which tools would you like to equip the agent with?", choices, nil)
				if err != nil {
					return s, err
				}
				r.remember(prefs.KeyTools, strings.Join(names, ","))
			}

			tools := make([]config.Tool, 0, len(names))
			for _, name := range names {
				if tool, ok := catalog.ToolByName(strings.TrimSpace(name)); ok {
					tools = append(tools, tool)
				}
			}
			s.Cfg.Tools = tools
			return s, nil
		},
	}
}

// providerKeyStep asks for the primary provider key whenever it is not
// already known from input or environment. Keys are never stored in
// preferences, so batch mode simply leaves the key empty.
func (r *Resolver) providerKeyStep() Step {
	return Step{
		Name:      "provider-key",
		AppliesIf: func(s State) bool { return providerKey(s) == "" },
		Run: func(ctx context.Context, s State) (State, error) {
			if s.Env.CI {
				r.log.Debug("no provider key available in batch mode",
					"env", models.KeyEnvVar(s.Cfg.Provider))
				return s, nil
			}
			key, err := r.prompter.Input(ctx,
				fmt.Sprintf("%s (leave blank to set it later)", models.KeyEnvVar(s.Cfg.Provider)), "")
			if err != nil {
				return s, err
			}
			s.Cfg.ProviderKey = key
			return s, nil
		},
	}
}

func (r *Resolver) eslintStep() Step {
	return Step{
		Name: "eslint",
		AppliesIf: func(s State) bool {
			return s.Cfg.Framework != "" &&
				s.Cfg.Framework != config.FrameworkFastAPI &&
				s.Cfg.ESLint == nil
		},
		Run: func(ctx context.Context, s State) (State, error) {
			enabled, err := r.confirm(ctx, s, prefs.KeyESLint,
				"Would you like to add ESLint to your project?", true)
			if err != nil {
				return s, err
			}
			s.Cfg.ESLint = &enabled
			return s, nil
		},
	}
}

func hasValue(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
