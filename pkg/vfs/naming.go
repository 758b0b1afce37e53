package vfs

import (
	"regexp"
	"strings"
)

// PathSeparator separates tokens in an emulated path.
const PathSeparator = `\`

// DefaultDriveName is the drive every fresh tree starts with.
const DefaultDriveName = "C:"

var (
	driveNamePattern     = regexp.MustCompile(`(?i)^[a-z]:$`)
	directoryNamePattern = regexp.MustCompile(`(?i)^[a-z0-9]{1,8}$`)
	fileNamePattern      = regexp.MustCompile(`(?i)^[a-z0-9]{1,8}\.?[a-z0-9]{0,3}$`)
	commandNamePattern   = regexp.MustCompile(`(?i)^[a-z]{2,10}$`)
)

// ValidDriveName reports whether name is a single letter followed by ':'.
func ValidDriveName(name string) bool {
	return driveNamePattern.MatchString(name)
}

// ValidDirectoryName reports whether name is 1 to 8 alphanumerics.
func ValidDirectoryName(name string) bool {
	return directoryNamePattern.MatchString(name)
}

// ValidFileName reports whether name is 1 to 8 alphanumerics, an optional
// '.', then 0 to 3 alphanumerics.
func ValidFileName(name string) bool {
	return fileNamePattern.MatchString(name)
}

// ValidCommandName reports whether name is 2 to 10 letters.
func ValidCommandName(name string) bool {
	return commandNamePattern.MatchString(name)
}

// EqualNames compares item names the way the tree does: case-insensitively.
func EqualNames(a, b string) bool {
	return strings.EqualFold(a, b)
}

// canonicalName validates name for the given kind and returns the stored
// form: drives and directories uppercase, files lowercase.
func canonicalName(kind ItemType, name string) (string, error) {
	switch kind {
	case ItemDrive:
		if !ValidDriveName(name) {
			return "", &Error{Code: ErrSyntax, Message: "bad drive name", Path: name}
		}
		return strings.ToUpper(name), nil
	case ItemDirectory:
		if !ValidDirectoryName(name) {
			return "", &Error{Code: ErrSyntax, Message: "bad directory name", Path: name}
		}
		return strings.ToUpper(name), nil
	case ItemFile:
		if !ValidFileName(name) {
			return "", &Error{Code: ErrSyntax, Message: "bad file name", Path: name}
		}
		return strings.ToLower(name), nil
	default:
		return "", NewError(ErrNotSupported, "link names are derived from their target")
	}
}
