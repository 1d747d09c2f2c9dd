package prefs

// Preference keys written by the resolver. One key per resolvable field;
// values are the serialized form of the last interactive answer.
const (
	KeyTemplate       = "template"
	KeyFramework      = "framework"
	KeyFrontend       = "frontend"
	KeyUI             = "ui"
	KeyDataSource     = "data_source"
	KeyLlamaParse     = "use_llamaparse"
	KeyWebBaseURL     = "web_base_url"
	KeyVectorDB       = "vector_db"
	KeyTools          = "tools"
	KeyModel          = "model"
	KeyEmbeddingModel = "embedding_model"
	KeyESLint         = "eslint"
	KeyPostAction     = "post_action"
	KeyCommunity      = "community_template"
	KeyLlamaPack      = "llama_pack"
)

// Store is the preference side-channel injected into the resolver. Reads
// supply fallback defaults in batch mode; writes record every interactive
// answer, so the last answer wins across invocations.
type Store interface {
	// Get returns the stored value for a field, and whether one exists.
	Get(key string) (string, bool)

	// Set records the value for a field.
	Set(key, value string) error
}
