// Package docs embeds the documentation topics served by the `linda topic`
// subcommand.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Get returns the content of one documentation topic.
func Get(topic string) (string, error) {
	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// All returns the sorted list of available topic names.
func All() []string {
	entries, err := topics.ReadDir(".")
	if err != nil {
		// the FS is embedded at compile time, this cannot happen
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}
