package models

import (
	"github.com/randalmurphal/llmkit/model"

	"github.com/randalmurphal/ragforge/config"
)

// openAIChatModels is the static fallback catalog used when no key is
// available for a live listing.
var openAIChatModels = []string{
	"gpt-4o",
	"gpt-4o-mini",
	"gpt-4-turbo",
	"gpt-3.5-turbo",
}

// anthropicChatModels comes from the llmkit model catalog.
var anthropicChatModels = []model.ModelName{
	model.ModelOpus,
	model.ModelSonnet,
	model.ModelHaiku,
}

// embeddingModelsByProvider lists the embedding models the Python templates
// support per provider.
var embeddingModelsByProvider = map[config.ModelProvider][]string{
	config.ProviderOpenAI: {
		"text-embedding-3-large",
		"text-embedding-3-small",
		"text-embedding-ada-002",
	},
	config.ProviderAnthropic: {
		// Anthropic has no embedding endpoint; the Python templates pair
		// Anthropic chat models with OpenAI embeddings.
		"text-embedding-3-large",
		"text-embedding-3-small",
	},
}

// ChatModels returns the static chat-model catalog for a provider.
func ChatModels(p config.ModelProvider) []string {
	switch p {
	case config.ProviderAnthropic:
		out := make([]string, 0, len(anthropicChatModels))
		for _, m := range anthropicChatModels {
			out = append(out, string(m))
		}
		return out
	default:
		out := make([]string, len(openAIChatModels))
		copy(out, openAIChatModels)
		return out
	}
}

// DefaultChatModel returns the default chat model for a provider.
func DefaultChatModel(p config.ModelProvider) string {
	if p == config.ProviderAnthropic {
		return string(model.ModelSonnet)
	}
	return "gpt-4o"
}

// EmbeddingModels returns the embedding-model catalog for a provider.
func EmbeddingModels(p config.ModelProvider) []string {
	list := embeddingModelsByProvider[p]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// DefaultEmbeddingModel returns the default embedding model for a provider.
func DefaultEmbeddingModel(p config.ModelProvider) string {
	list := embeddingModelsByProvider[p]
	if len(list) == 0 {
		return "text-embedding-3-large"
	}
	return list[0]
}

// KeyEnvVar names the environment variable carrying the provider's API key.
func KeyEnvVar(p config.ModelProvider) string {
	if p == config.ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}
