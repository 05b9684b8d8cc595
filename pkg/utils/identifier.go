package utils

import "regexp"

// tableNamePattern is the identifier rule shared by every dialect.
var tableNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// IsValidTableName reports whether name may be embedded verbatim into generated
// SQL. Only lower case ASCII letters, digits and '_' are allowed and the name
// must not be empty.
//
// Examples:
//   - "users" -> true
//   - "user_roles_2" -> true
//   - "Users" -> false
//   - "my table" -> false
//   - "(not valid)" -> false
//   - "" -> false
func IsValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

// SuffixIdentifier joins an identifier and a suffix with '_'.
//
// Examples:
//   - ("users", "seq") -> "users_seq"
//   - ("users", "idt") -> "users_idt"
//   - ("users", "") -> "users"
func SuffixIdentifier(name, suffix string) string {
	if suffix == "" {
		return name
	}
	return name + "_" + suffix
}
