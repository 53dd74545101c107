package scaffold

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Capitalize returns the string with the first letter uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	return strcase.ToSnake(s)
}
