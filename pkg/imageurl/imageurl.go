// Package imageurl rewrites public image paths so they resolve when the
// client is served from a non-root deployment path.
package imageurl

import "strings"

const (
	DefaultAvatar = "/images/default-avatar.png"
	DefaultBanner = "/images/default-banner.jpg"
)

// Normalizer prefixes relative image paths with the deployment base path
type Normalizer struct {
	base string
}

// New creates a Normalizer. The base path always starts and ends with a
// slash.
func New(basePath string) Normalizer {
	base := strings.TrimSpace(basePath)
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return Normalizer{base: base}
}

// Base returns the deployment base path
func (n Normalizer) Base() string {
	return n.base
}

// Normalize rewrites url. It returns "" for blank input so the caller can
// substitute a default.
//
//	data:..., http://..., https://...  unchanged
//	/images/x.png                      <base>images/x.png
//	images/x.png                       <base>images/x.png
//	x.png                              <base>images/x.png
//	<base without leading slash>x.png  <base>x.png
func (n Normalizer) Normalize(url string) string {
	trimmed := strings.TrimSpace(url)
	switch {
	case trimmed == "":
		return ""
	case strings.HasPrefix(trimmed, "data:"),
		strings.HasPrefix(trimmed, "http://"),
		strings.HasPrefix(trimmed, "https://"):
		return trimmed
	case strings.HasPrefix(trimmed, n.base) && n.base != "/":
		// already rewritten
		return trimmed
	case n.base != "/" && strings.HasPrefix(trimmed, strings.TrimPrefix(n.base, "/")):
		// already rewritten, minus the leading slash
		return "/" + trimmed
	case strings.HasPrefix(trimmed, "/"):
		return n.base + trimmed[1:]
	case strings.HasPrefix(trimmed, "images/"):
		return n.base + trimmed
	default:
		return n.base + "images/" + trimmed
	}
}

// OrDefault normalizes url, falling back to fallback when url is blank
func (n Normalizer) OrDefault(url *string, fallback string) string {
	if url != nil {
		if out := n.Normalize(*url); out != "" {
			return out
		}
	}
	return n.Normalize(fallback)
}
