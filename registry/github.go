package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/randalmurphal/ragforge/httpx"
)

// GitHubProvider lists catalogs hosted on GitHub.
type GitHubProvider struct {
	client *github.Client

	templateOwner string
	templateRepo  string

	packOwner string
	packRepo  string
	packPath  string
}

// NewGitHubProvider creates a GitHub catalog provider. token may be empty;
// the catalogs are public and an anonymous client only risks tighter rate
// limits.
func NewGitHubProvider(token string) *GitHubProvider {
	httpClient := httpx.NewClient()
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient.Transport = &oauth2.Transport{
			Base:   httpClient.Transport,
			Source: ts,
		}
	}
	client := github.NewClient(httpClient)

	return &GitHubProvider{
		client:        client,
		templateOwner: "run-llama",
		templateRepo:  "create_llama_projects",
		packOwner:     "run-llama",
		packRepo:      "llama_index",
		packPath:      DefaultPackPath,
	}
}

// WithTemplateCatalog points the provider at a different template repo.
func (p *GitHubProvider) WithTemplateCatalog(owner, repo string) *GitHubProvider {
	p.templateOwner, p.templateRepo = owner, repo
	return p
}

// WithPackCatalog points the provider at a different pack repo and path.
func (p *GitHubProvider) WithPackCatalog(owner, repo, path string) *GitHubProvider {
	p.packOwner, p.packRepo, p.packPath = owner, repo, path
	return p
}

// ListTemplates implements Provider. Every top-level directory of the
// template catalog repo is one community template.
func (p *GitHubProvider) ListTemplates(ctx context.Context) ([]string, error) {
	names, err := p.listDirs(ctx, p.templateOwner, p.templateRepo, "")
	if err != nil {
		return nil, fmt.Errorf("list community templates: %w", err)
	}
	return names, nil
}

// ListPacks implements Provider.
func (p *GitHubProvider) ListPacks(ctx context.Context) ([]string, error) {
	dirs, err := p.listDirs(ctx, p.packOwner, p.packRepo, p.packPath)
	if err != nil {
		return nil, fmt.Errorf("list llamapacks: %w", err)
	}
	names := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		names = append(names, packName(dir))
	}
	return names, nil
}

func (p *GitHubProvider) listDirs(ctx context.Context, owner, repo, path string) ([]string, error) {
	_, contents, _, err := p.client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range contents {
		if entry.GetType() != "dir" {
			continue
		}
		name := entry.GetName()
		if name == "" || name[0] == '.' || name[0] == '_' {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
