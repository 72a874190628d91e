package util

import (
	"fmt"
	"regexp"
)

// validIDChars matches alphanumeric characters, hyphens, periods, and
// underscores. Underscores appear in SQS queue names.
var validIDChars = regexp.MustCompile(`^[a-zA-Z0-9._\-]+$`)

// ValidateInstanceID checks an instance identifier given on the
// command line before it is used in a dimension filter:
//   - At least 1 character, at most 128
//   - Only alphanumeric characters, hyphens, periods, and underscores
//   - First character must be alphanumeric
func ValidateInstanceID(id string) error {
	if id == "" {
		return fmt.Errorf("instance ID must not be empty")
	}
	if len(id) > 128 {
		return fmt.Errorf("instance ID must be at most 128 characters, got %d", len(id))
	}

	if !validIDChars.MatchString(id) {
		return fmt.Errorf("instance ID %q contains invalid characters (only a-z, A-Z, 0-9, hyphens, periods, and underscores are allowed)", id)
	}

	if !isAlphanumeric(id[0]) {
		return fmt.Errorf("instance ID must start with an alphanumeric character, got %q", string(id[0]))
	}

	return nil
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
