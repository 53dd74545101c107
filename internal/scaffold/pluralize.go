package scaffold

import (
	"sync"

	"github.com/gertd/go-pluralize"
)

var (
	inflector     *pluralize.Client
	inflectorOnce sync.Once
)

// Pluralize returns the plural form of word. Words that are already plural
// come back unchanged.
func Pluralize(word string) string {
	if word == "" {
		return ""
	}
	inflectorOnce.Do(func() {
		inflector = pluralize.NewClient()
	})
	return inflector.Plural(word)
}
