package search

import (
	"path/filepath"
	"strconv"
	"strings"
)

// RelativeDisplayPath strips root, and one following path separator,
// from path. If root is not a prefix of path, path is returned
// unchanged rather than failing: display formatting is best-effort.
func RelativeDisplayPath(path, root string) string {
	if root == "" || !strings.HasPrefix(path, root) {
		return path
	}
	rest := path[len(root):]
	if len(rest) > 0 && rest[0] == filepath.Separator {
		rest = rest[1:]
	}
	return rest
}

// FormatDisplay builds the "<relpath>:<line>:1<line text>"
// display string used for every match record. lineIdx is 0-based, and
// the column is always 1: the pipeline reports the matched line, not
// a character offset within it.
func FormatDisplay(relPath string, lineIdx int, line string) string {
	var b strings.Builder
	b.Grow(len(relPath) + len(line) + 8)
	b.WriteString(relPath)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(lineIdx))
	b.WriteString(":1")
	b.WriteString(line)
	return b.String()
}
