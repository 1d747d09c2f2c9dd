package config

import "fmt"

// Template selects the overall shape of the generated project.
type Template string

// Template constants.
const (
	TemplateStreaming Template = "streaming"
	TemplateSimple    Template = "simple"
	TemplateCommunity Template = "community"
	TemplateLlamaPack Template = "llamapack"
)

// Framework selects the serving stack of the generated app.
type Framework string

// Framework constants.
const (
	// FrameworkNextJS is the full-stack default, only offered for the
	// streaming template.
	FrameworkNextJS Framework = "nextjs"

	// FrameworkExpress is the TypeScript backend service.
	FrameworkExpress Framework = "express"

	// FrameworkFastAPI is the Python backend service.
	FrameworkFastAPI Framework = "fastapi"
)

// Language is the implementation language of a framework's template set.
type Language string

// Language constants.
const (
	LanguageTypeScript Language = "typescript"
	LanguagePython     Language = "python"
)

// Language returns the implementation language of the framework.
func (f Framework) Language() Language {
	if f == FrameworkFastAPI {
		return LanguagePython
	}
	return LanguageTypeScript
}

// UI selects the frontend component style.
type UI string

// UI constants.
const (
	UIHTML   UI = "html"
	UIShadcn UI = "shadcn"
)

// Engine determines whether the generated app answers from an indexed
// context corpus or has no retrieval context at all.
type Engine string

// Engine constants.
const (
	// EngineSimple is a plain chat engine with no retrieval context.
	EngineSimple Engine = "simple"

	// EngineContext answers from an indexed document corpus.
	EngineContext Engine = "context"
)

// VectorDB selects the vector store backing a context engine.
type VectorDB string

// VectorDB constants.
const (
	VectorDBNone     VectorDB = "none"
	VectorDBMongo    VectorDB = "mongo"
	VectorDBPg       VectorDB = "pg"
	VectorDBPinecone VectorDB = "pinecone"
)

// ModelProvider identifies the LLM provider for the generated app.
type ModelProvider string

// ModelProvider constants.
const (
	ProviderOpenAI    ModelProvider = "openai"
	ProviderAnthropic ModelProvider = "anthropic"
)

// PostAction is what the tool does immediately after generating files.
type PostAction string

// PostAction constants.
const (
	// PostActionNone generates code and stops.
	PostActionNone PostAction = "none"

	// PostActionVSCode opens the generated project in VS Code.
	PostActionVSCode PostAction = "vscode"

	// PostActionDeps installs dependencies.
	PostActionDeps PostAction = "dependencies"

	// PostActionRun installs dependencies and starts the app.
	PostActionRun PostAction = "run"
)

// Tool describes an agent tool the generated app can be equipped with.
type Tool struct {
	Name string `json:"name" yaml:"name"`

	// DisplayName is shown in prompts; Name is what lands in the plan.
	DisplayName string `json:"displayName,omitempty" yaml:"display_name,omitempty"`

	// RequiresConfig marks tools that need extra configuration (API keys,
	// endpoints) before the generated app can start.
	RequiresConfig bool `json:"requiresConfig,omitempty" yaml:"requires_config,omitempty"`
}

// Config is the generation plan assembled by the resolver. Fields start
// unset and are filled by direct input, stored preference, or default; on
// the success path every field the generator consumes ends up resolved.
type Config struct {
	Template Template `json:"template,omitempty" yaml:"template,omitempty"`

	// CommunityTemplate is the selected remote community project. When the
	// community template is chosen it is the only field the generator
	// consumes.
	CommunityTemplate string `json:"communityTemplate,omitempty" yaml:"community_template,omitempty"`

	// LlamaPack is the selected prepackaged recipe, for the llamapack
	// template only.
	LlamaPack string `json:"llamaPack,omitempty" yaml:"llama_pack,omitempty"`

	Framework Framework `json:"framework,omitempty" yaml:"framework,omitempty"`

	// Frontend records whether a separate frontend is generated alongside a
	// backend framework. Nil means undecided.
	Frontend *bool `json:"frontend,omitempty" yaml:"frontend,omitempty"`

	UI UI `json:"ui,omitempty" yaml:"ui,omitempty"`

	Engine Engine `json:"engine,omitempty" yaml:"engine,omitempty"`

	DataSource *DataSource `json:"dataSource,omitempty" yaml:"data_source,omitempty"`

	VectorDB VectorDB `json:"vectorDb,omitempty" yaml:"vector_db,omitempty"`

	Tools []Tool `json:"tools,omitempty" yaml:"tools,omitempty"`

	Provider       ModelProvider `json:"provider,omitempty" yaml:"provider,omitempty"`
	Model          string        `json:"model,omitempty" yaml:"model,omitempty"`
	EmbeddingModel string        `json:"embeddingModel,omitempty" yaml:"embedding_model,omitempty"`

	// ProviderKey is the primary model-provider API key. Never persisted to
	// preferences.
	ProviderKey string `json:"-" yaml:"-"`

	// LlamaCloudKey is the enhanced-parsing credential. Never persisted.
	LlamaCloudKey string `json:"-" yaml:"-"`

	// ESLint records whether lint tooling is wired into TypeScript
	// projects. Nil means undecided.
	ESLint *bool `json:"eslint,omitempty" yaml:"eslint,omitempty"`

	PostAction PostAction `json:"postAction,omitempty" yaml:"post_action,omitempty"`
}

// FrontendEnabled reports the frontend decision, treating undecided as off.
func (c *Config) FrontendEnabled() bool {
	return c.Frontend != nil && *c.Frontend
}

// HasToolRequiringConfig reports whether any selected tool needs extra
// configuration before the generated app can run.
func (c *Config) HasToolRequiringConfig() bool {
	for _, tool := range c.Tools {
		if tool.RequiresConfig {
			return true
		}
	}
	return false
}

// Complete validates that every field the generator consumes is resolved.
// The community and llamapack templates short-circuit most of the pipeline,
// so they have their own (much smaller) requirements.
func (c *Config) Complete() error {
	switch c.Template {
	case TemplateCommunity:
		if c.CommunityTemplate == "" {
			return fmt.Errorf("community template not selected")
		}
		return nil
	case TemplateLlamaPack:
		if c.LlamaPack == "" {
			return fmt.Errorf("llamapack not selected")
		}
		if c.PostAction == "" {
			return fmt.Errorf("post-install action not resolved")
		}
		return nil
	case TemplateStreaming, TemplateSimple:
		// Validated below.
	case "":
		return fmt.Errorf("template not resolved")
	default:
		return fmt.Errorf("unknown template %q", c.Template)
	}

	if c.Framework == "" {
		return fmt.Errorf("framework not resolved")
	}
	if c.Engine == "" {
		return fmt.Errorf("engine not resolved")
	}
	if c.DataSource == nil {
		return fmt.Errorf("data source not resolved")
	}
	if err := c.DataSource.Validate(); err != nil {
		return err
	}
	if c.Model == "" {
		return fmt.Errorf("model not resolved")
	}
	if c.Engine == EngineContext && c.VectorDB == "" {
		return fmt.Errorf("vector database not resolved")
	}
	if c.PostAction == "" {
		return fmt.Errorf("post-install action not resolved")
	}
	return nil
}
