package models

import (
	"context"
	"sort"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/randalmurphal/ragforge/httpx"
)

// ListOpenAIChatModels queries the OpenAI API for the chat models the key
// can use. Only gpt-* models are returned; the account may expose dozens of
// audio/embedding variants the generated app cannot serve as its chat model.
func ListOpenAIChatModels(ctx context.Context, apiKey string) ([]string, error) {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpx.NewClient()),
	)

	var names []string
	iter := client.Models.ListAutoPaging(ctx)
	for iter.Next() {
		id := iter.Current().ID
		if isChatModel(id) {
			names = append(names, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// isChatModel filters the model listing down to chat completions models.
func isChatModel(id string) bool {
	if !strings.HasPrefix(id, "gpt-") {
		return false
	}
	for _, skip := range []string{"audio", "realtime", "instruct", "transcribe", "tts", "search"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return true
}
