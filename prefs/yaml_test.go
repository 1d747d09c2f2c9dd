package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestYAMLStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "preferences.yaml")

	store := NewYAMLStoreAt(path)
	if _, ok := store.Get(KeyFramework); ok {
		t.Fatal("fresh store should be empty")
	}

	if err := store.Set(KeyFramework, "fastapi"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(KeyVectorDB, "none"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A second store over the same file sees the persisted answers.
	reloaded := NewYAMLStoreAt(path)
	if v, ok := reloaded.Get(KeyFramework); !ok || v != "fastapi" {
		t.Errorf("framework = %q, %v; want fastapi, true", v, ok)
	}
	if v, ok := reloaded.Get(KeyVectorDB); !ok || v != "none" {
		t.Errorf("vector_db = %q, %v; want none, true", v, ok)
	}
}

func TestYAMLStore_LastAnswerWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	store := NewYAMLStoreAt(path)

	if err := store.Set(KeyUI, "html"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(KeyUI, "shadcn"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if v, _ := NewYAMLStoreAt(path).Get(KeyUI); v != "shadcn" {
		t.Errorf("ui = %q, want shadcn", v)
	}
}

func TestYAMLStore_CorruptFileIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	if err := os.WriteFile(path, []byte(":\nnot yaml at all ["), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewYAMLStoreAt(path)
	if _, ok := store.Get(KeyTemplate); ok {
		t.Error("corrupt file should read as empty")
	}

	// The next write replaces the corrupt content.
	if err := store.Set(KeyTemplate, "streaming"); err != nil {
		t.Fatalf("Set after corrupt read: %v", err)
	}
	if v, _ := NewYAMLStoreAt(path).Get(KeyTemplate); v != "streaming" {
		t.Errorf("template = %q, want streaming", v)
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()
	if err := store.Set(KeyModel, "gpt-4o"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok := store.Get(KeyModel); !ok || v != "gpt-4o" {
		t.Errorf("model = %q, %v; want gpt-4o, true", v, ok)
	}
	if _, ok := store.Get(KeyESLint); ok {
		t.Error("unset key should not resolve")
	}
}
