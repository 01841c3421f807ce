package linda

import "testing"

// mustParse is a helper for tests that need an already tokenized command.
func mustParse(t *testing.T, text string) *Command {
	t.Helper()
	cmd, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return cmd
}

// mustClassify is a helper for tests that need an already classified order.
func mustClassify(t *testing.T, text string) Classified {
	t.Helper()
	c, err := mustParse(t, text).Classify()
	if err != nil {
		t.Fatalf("Classify(%q) failed: %v", text, err)
	}
	return c
}
