package registry

import (
	"fmt"
	"os"
	"strings"
)

// ProviderFromURL creates a catalog provider for the host of catalogURL.
// GitHub and GitLab (including self-hosted instances with "gitlab" in the
// host) are supported.
//
// Environment variables checked for tokens:
//   - GITHUB_TOKEN for GitHub
//   - GITLAB_TOKEN for GitLab
//
// Both catalogs are public, so a missing token is not an error.
func ProviderFromURL(catalogURL string) (Provider, error) {
	host := strings.ToLower(catalogURL)

	switch {
	case strings.Contains(host, "github.com"):
		project, err := parseProjectPath(catalogURL)
		if err != nil {
			return nil, err
		}
		owner, repo, ok := strings.Cut(project, "/")
		if !ok {
			return nil, fmt.Errorf("invalid catalog URL: %s", catalogURL)
		}
		p := NewGitHubProvider(os.Getenv("GITHUB_TOKEN"))
		return p.WithTemplateCatalog(owner, repo), nil

	case strings.Contains(host, "gitlab"):
		project, err := parseProjectPath(catalogURL)
		if err != nil {
			return nil, err
		}
		var baseURL string
		if !strings.Contains(host, "gitlab.com") {
			baseURL = baseURLOf(catalogURL)
		}
		return NewGitLabProvider(os.Getenv("GITLAB_TOKEN"), baseURL, project, "")

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownHost, catalogURL)
	}
}

// parseProjectPath extracts "namespace/project" from a catalog URL.
func parseProjectPath(catalogURL string) (string, error) {
	trimmed := strings.TrimPrefix(catalogURL, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	trimmed = strings.TrimSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	parts := strings.Split(trimmed, "/")
	if len(parts) < 3 {
		return "", fmt.Errorf("invalid catalog URL: %s", catalogURL)
	}
	return strings.Join(parts[1:], "/"), nil
}

// baseURLOf extracts the instance URL for self-hosted GitLab catalogs.
func baseURLOf(catalogURL string) string {
	trimmed := strings.TrimPrefix(catalogURL, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	if i := strings.Index(trimmed, "/"); i > 0 {
		trimmed = trimmed[:i]
	}
	return "https://" + trimmed
}
