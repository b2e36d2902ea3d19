package authz

import "strings"

// MatchPath checks if a path pattern matches a request path.
//
//   - "*"        matches every path
//   - "/docs/*"  matches "/docs", "/docs/" and anything below it
//   - "/health"  matches only "/health"
//
// Matching is exact aside from the trailing "/*" subtree form; there is no
// precedence beyond rule declaration order.
func MatchPath(pattern, path string) bool {
	if pattern == "*" || pattern == path {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return false
}
