package zkc

import "strings"

// JoinPath appends relative segments to a base znode path. Trailing slashes
// on the base and any leading or trailing slashes on the segments are
// stripped, so each segment joins with exactly one separator:
//
//	JoinPath("/a/b/", "/c/", "d") == "/a/b/c/d"
func JoinPath(base string, segments ...string) string {
	result := strings.TrimRight(base, "/")
	for _, seg := range segments {
		result = result + "/" + strings.Trim(seg, "/")
	}
	return result
}
