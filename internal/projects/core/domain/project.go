package domain

import (
	"regexp"
	"strings"
)

// IDLength is the length of every public project ID.
const IDLength = 12

var idChars = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// IsValidID reports whether pid is well-formed: 12 characters of
// letters, digits and single dashes.
func IsValidID(pid string) bool {
	if len(pid) != IDLength {
		return false
	}
	if strings.Contains(pid, "--") {
		return false
	}
	return idChars.MatchString(pid)
}
