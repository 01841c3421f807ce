package linda

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Markers is the alphabet of accepted leading operation symbols.
const Markers = "&>+"

// Separator splits the fields that follow the marker. Fields cannot contain
// it: there is no quoting or escaping.
const Separator = ","

// Command is an immutable tokenized command line plus the local time it was
// parsed at.
type Command struct {
	pack      []Token
	createdAt time.Time
}

// Parse tokenizes a raw command line.
//
// The first character must be a marker, otherwise Parse fails with
// ErrMalformedCommand. The remainder is split on Separator; each field is
// trimmed and becomes a Number token if it parses as an integer, a Text
// token otherwise (the empty string included). A line of only the marker
// yields a single-token command, valid here and rejected at classification.
func Parse(text string) (*Command, error) {
	createdAt := time.Now()

	first, size := utf8.DecodeRuneInString(text)
	if size == 0 || !strings.ContainsRune(Markers, first) {
		return nil, fmt.Errorf("parsing %q: %w", text, ErrMalformedCommand)
	}

	pack := []Token{Marker(first)}
	if rest := text[size:]; rest != "" {
		for _, field := range strings.Split(rest, Separator) {
			field = strings.TrimSpace(field)
			if n, err := strconv.Atoi(field); err == nil {
				pack = append(pack, Number(n))
			} else {
				pack = append(pack, Text(field))
			}
		}
	}
	return &Command{pack: pack, createdAt: createdAt}, nil
}

// Tokens returns a copy of the command's tokens, marker first. The command
// itself stays immutable.
func (c *Command) Tokens() []Token { return slices.Clone(c.pack) }

// CreatedAt returns the local time the command was parsed at.
func (c *Command) CreatedAt() time.Time { return c.createdAt }

// String renders the tokens back into a command line form, for logs.
func (c *Command) String() string {
	parts := make([]string, 0, len(c.pack))
	for _, t := range c.pack[1:] {
		parts = append(parts, t.String())
	}
	return c.pack[0].String() + strings.Join(parts, Separator)
}
