package arcfiles

import "strings"

// Separator is the path separator used in drop-relative paths and
// inside archive indexes, regardless of the host OS.
const Separator = "/"

// Ext returns the extension of a file name: the text after the final
// dot. A name without a dot has no extension, as does a dotfile like
// ".gitignore". A name ending in a dot has the empty extension, which
// is still reported (ok is true).
func Ext(name string) (ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

// SplitPath splits a drop-relative path on the separator. A path with a
// leading separator yields an empty segment 0, so segment 1 is the
// top-level folder name.
func SplitPath(p string) []string {
	return strings.Split(p, Separator)
}

// TopDir returns the top-level folder name of a drop-relative path.
// Paths without a leading separator (or empty) have no top-level folder.
func TopDir(p string) (string, bool) {
	if !strings.HasPrefix(p, Separator) {
		return "", false
	}
	segments := SplitPath(p)
	if len(segments) < 3 || segments[1] == "" {
		// "/name" alone is a loose file at the drop root, not a folder member.
		return "", false
	}
	return segments[1], true
}

// BaseName returns the final segment of an internal archive path.
func BaseName(p string) string {
	if i := strings.LastIndex(p, Separator); i >= 0 {
		return p[i+1:]
	}
	return p
}
