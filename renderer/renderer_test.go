package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/lindacli/linda"
)

func process(t *testing.T, text string) (*linda.Command, linda.Classified, *linda.Record) {
	t.Helper()
	cmd, err := linda.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	c, err := cmd.Classify()
	if err != nil {
		t.Fatalf("Classify(%q) failed: %v", text, err)
	}
	rec, _ := linda.NewRecord(c)
	return cmd, c, rec
}

func TestCommandIncome(t *testing.T) {
	got := Command(process(t, "&10,some word"))

	for _, want := range []string{"income", "some word", "| 0 | marker | & |", "| 1 | number | 10 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("Command output misses %q:\n%s", want, got)
		}
	}
}

func TestCommandExpense(t *testing.T) {
	got := Command(process(t, ">25,rent"))

	if !strings.Contains(got, "expense") {
		t.Errorf("Command output misses the classification:\n%s", got)
	}
	if !strings.Contains(got, "No producer") {
		t.Errorf("Command output misses the inert-expense note:\n%s", got)
	}
}

func TestCommandNoOperation(t *testing.T) {
	got := Command(process(t, "&100,10,some word,other word"))

	if !strings.Contains(got, "no operation") {
		t.Errorf("Command output misses the no-operation note:\n%s", got)
	}
}

func TestRecords(t *testing.T) {
	records := []linda.Record{
		{CreatedAt: time.Unix(1700000000, 0), Tax: 1050, Category: "salary"},
	}
	got := Records(records, "EUR")

	if !strings.Contains(got, "salary") {
		t.Errorf("Records output misses the category:\n%s", got)
	}
	if !strings.Contains(got, Amount(1050, "EUR")) {
		t.Errorf("Records output misses the formatted amount:\n%s", got)
	}
}

func TestRecordsEmpty(t *testing.T) {
	if got := Records(nil, "EUR"); !strings.Contains(got, "No records yet") {
		t.Errorf("Records(nil) = %q, want the empty note", got)
	}
}

func TestAmount(t *testing.T) {
	// exact formatting is the currency's business; it must at least carry the digits
	if got := Amount(1050, "EUR"); !strings.Contains(got, "10") {
		t.Errorf("Amount(1050, EUR) = %q, want the major units in it", got)
	}
}
