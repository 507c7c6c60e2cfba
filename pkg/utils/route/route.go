// Package route builds paths from route templates such as "/ci-cd/:id".
package route

import (
	"net/url"
	"strings"
)

// Build replaces each ":name" segment of tmpl with the path-escaped value of
// params[name]. A parameter missing from params becomes an empty segment.
// Segments without a leading colon are kept as is.
func Build(tmpl string, params map[string]string) string {
	segments := strings.Split(tmpl, "/")
	for i, seg := range segments {
		name, ok := strings.CutPrefix(seg, ":")
		if !ok || name == "" {
			continue
		}
		segments[i] = url.PathEscape(params[name])
	}
	return strings.Join(segments, "/")
}

// Join concatenates a base path and a relative route without doubling slashes.
func Join(base, path string) string {
	if base == "" {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
