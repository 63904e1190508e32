package router

import "strings"

// wildcardSegment is the pattern segment that matches one or more
// consecutive path segments.
const wildcardSegment = "*"

// isVariable reports whether a pattern segment is a variable segment.
// A bare ":" counts: it is a variable with the empty name.
func isVariable(segment string) bool {
	return len(segment) > 0 && segment[0] == ':'
}

// splitPath splits a path into its segments. The empty path and "/"
// yield nil. Exactly one leading and one trailing slash are stripped
// before splitting, so "/a/b/" and "a/b" segment identically while
// "//a/b" keeps a leading empty segment. Empty segments produced by
// consecutive slashes are preserved: they act as empty literals that
// no route declares. The input is used as-is, with no percent
// decoding or case folding.
func splitPath(path string) []string {
	if path == "" || path == "/" {
		return nil
	}
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	return strings.Split(path, "/")
}
