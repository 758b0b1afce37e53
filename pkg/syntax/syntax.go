// Package syntax tokenizes command lines and emulated paths.
//
// A command line is a command name followed by whitespace-separated
// arguments. A path is a backslash-separated list of tokens where the first
// token may be a drive ("C:"), intermediate tokens are directory names and the
// last token is a directory or file name.
package syntax

import (
	"regexp"
	"strings"

	"github.com/marmos91/vfsemu/pkg/vfs"
)

var whitespace = regexp.MustCompile(`\s+`)

// TrimSpaces collapses every run of whitespace into a single space and trims
// both ends.
func TrimSpaces(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// ParseCommand splits a command line into the command name and its
// arguments. It fails when the line is blank or the first token is not a
// valid command name.
func ParseCommand(line string) ([]string, bool) {
	tokens := strings.Split(TrimSpaces(line), " ")
	for i, token := range tokens {
		if i == 0 && !vfs.ValidCommandName(token) {
			return nil, false
		}
		if token == "" {
			return nil, false
		}
	}
	return tokens, true
}

// ParsePath splits an emulated path into its tokens. Empty paths, leading,
// trailing or doubled separators and invalid names are rejected.
func ParsePath(path string) ([]string, bool) {
	if path == "" || strings.HasSuffix(path, vfs.PathSeparator) {
		return nil, false
	}

	tokens := strings.Split(path, vfs.PathSeparator)
	for i, token := range tokens {
		first := i == 0
		last := i == len(tokens)-1

		valid := (first && vfs.ValidDriveName(token)) ||
			(last && vfs.ValidFileName(token)) ||
			vfs.ValidDirectoryName(token)
		if !valid {
			return nil, false
		}
	}
	return tokens, true
}
