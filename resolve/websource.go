package resolve

import (
	"net/url"
	"strings"

	rferrors "github.com/randalmurphal/ragforge/errors"
)

// NormalizeBaseURL canonicalizes a user-entered crawl URL. Bare host names
// get an https scheme prepended; anything that is not http or https, or has
// no host, is rejected.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", rferrors.NewInvalidURLError(raw)
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", rferrors.NewInvalidURLError(raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", rferrors.NewInvalidURLError(raw)
	}
	if u.Host == "" {
		return "", rferrors.NewInvalidURLError(raw)
	}
	return u.String(), nil
}
