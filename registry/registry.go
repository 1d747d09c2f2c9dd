package registry

import (
	"context"
	"errors"
)

// Default catalog locations. Community templates and llamapacks each live in
// a directory of a hosted catalog repository; one subdirectory per entry.
const (
	DefaultTemplateCatalogURL = "https://github.com/run-llama/create_llama_projects"
	DefaultPackCatalogURL     = "https://github.com/run-llama/llama_index"
	DefaultPackPath           = "llama-index-packs"
)

// ErrUnknownHost indicates the catalog URL points at a host no provider
// supports.
var ErrUnknownHost = errors.New("unknown catalog host")

// Provider lists the entries of a remote project catalog.
// Implementations exist for GitHub and GitLab.
type Provider interface {
	// ListTemplates returns the community template names, in catalog order.
	ListTemplates(ctx context.Context) ([]string, error)

	// ListPacks returns the llamapack names, in catalog order.
	ListPacks(ctx context.Context) ([]string, error)
}

// packName strips the catalog's package prefix from a pack directory name.
func packName(dir string) string {
	const prefix = "llama-index-packs-"
	if len(dir) > len(prefix) && dir[:len(prefix)] == prefix {
		return dir[len(prefix):]
	}
	return dir
}
