// Package registry lists remote project catalogs: the community templates
// and the llamapacks an operator can scaffold from instead of the standard
// templates.
//
// Catalogs are plain repository layouts (one subdirectory per entry), so a
// provider is just a hosted-VCS tree listing. GitHub and GitLab (including
// self-hosted) are supported; ProviderFromURL picks the right one from the
// catalog URL.
package registry
