package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/xanzy/go-gitlab"

	"github.com/randalmurphal/ragforge/httpx"
)

// GitLabProvider lists catalogs mirrored on a GitLab instance, including
// self-hosted ones.
type GitLabProvider struct {
	client *gitlab.Client

	templateProject string // numeric ID or "namespace/project"
	packProject     string
	packPath        string
}

// NewGitLabProvider creates a GitLab catalog provider.
// baseURL is the GitLab instance URL (empty for gitlab.com).
func NewGitLabProvider(token, baseURL, templateProject, packProject string) (*GitLabProvider, error) {
	if templateProject == "" {
		return nil, fmt.Errorf("template project is required")
	}

	opts := []gitlab.ClientOptionFunc{gitlab.WithHTTPClient(httpx.NewClient())}
	if baseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(baseURL))
	}
	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create GitLab client: %w", err)
	}

	return &GitLabProvider{
		client:          client,
		templateProject: templateProject,
		packProject:     packProject,
		packPath:        DefaultPackPath,
	}, nil
}

// ListTemplates implements Provider.
func (p *GitLabProvider) ListTemplates(ctx context.Context) ([]string, error) {
	names, err := p.listDirs(ctx, p.templateProject, "")
	if err != nil {
		return nil, fmt.Errorf("list community templates: %w", err)
	}
	return names, nil
}

// ListPacks implements Provider.
func (p *GitLabProvider) ListPacks(ctx context.Context) ([]string, error) {
	if p.packProject == "" {
		return nil, fmt.Errorf("pack catalog not configured")
	}
	dirs, err := p.listDirs(ctx, p.packProject, p.packPath)
	if err != nil {
		return nil, fmt.Errorf("list llamapacks: %w", err)
	}
	names := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		names = append(names, packName(dir))
	}
	return names, nil
}

func (p *GitLabProvider) listDirs(ctx context.Context, project, path string) ([]string, error) {
	opts := &gitlab.ListTreeOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100},
	}
	if path != "" {
		opts.Path = gitlab.Ptr(path)
	}

	var names []string
	for {
		nodes, resp, err := p.client.Repositories.ListTree(project, opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		for _, node := range nodes {
			if node.Type != "tree" {
				continue
			}
			if node.Name == "" || node.Name[0] == '.' || node.Name[0] == '_' {
				continue
			}
			names = append(names, node.Name)
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	sort.Strings(names)
	return names, nil
}
