package ospath

import (
	"os"
	"path/filepath"
	"strings"
)

// chunk decomposes a rootless native representation into its raw
// components in order. Empty components and "." are dropped; ".." is
// passed through untouched for the constructors to interpret.
func chunk(s string) []string {
	var chunks []string
	for _, part := range strings.Split(filepath.ToSlash(s), "/") {
		if part == "" || part == "." {
			continue
		}
		chunks = append(chunks, part)
	}
	return chunks
}

// splitRoot separates an absolute representation into its opaque root
// token and the remainder to be chunked. The token is the platform
// volume name plus one separator: "/" on Unix, `C:\` or a UNC share root
// on Windows. The caller guarantees s is absolute.
func splitRoot(s string) (root string, rest string) {
	volume := filepath.VolumeName(s)
	return volume + string(os.PathSeparator), s[len(volume):]
}
