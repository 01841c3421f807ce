package linda

import "errors"

// ErrMalformedCommand reports a command line whose first character is not
// part of the marker alphabet. Such a line never reaches classification.
var ErrMalformedCommand = errors.New("the first character in the command line does not match the allowed characters")

// ErrNoOrderKind reports a marker that matched the order shape but has no
// mapped order kind. The tokenizer accepts '+' without a mapping, so this is
// a grammar/mapping mismatch that must surface immediately.
var ErrNoOrderKind = errors.New("there is no operation type for the specified command")
