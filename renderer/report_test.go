package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/etnz/bankacct"
)

func testStore() *bankacct.Store {
	return bankacct.NewStore([]bankacct.Account{
		{
			First: "John", Last: "Smith", Middle: "Q",
			Social: 987654321, Area: 444, Phone: 5554321,
			Balance: bankacct.M(10.5), Number: "A0002", Password: "XYZ789",
		},
		{
			First: "Jane", Last: "Doe", Middle: "J",
			Social: 123456789, Area: 555, Phone: 5551234,
			Balance: bankacct.M(100.0), Number: "A0001", Password: "ABC123",
		},
	})
}

// pad left-justifies s in a field of the given width, independently of
// the verbs Report uses.
func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-len(s))
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, testStore())

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 6 {
		t.Fatalf("report has %d lines, want at least 6", len(lines))
	}

	rule := "-------  ----            -----           --  ---------  ------------  -------"
	if lines[0] != rule || lines[3] != rule {
		t.Errorf("header rules = %q / %q, want %q", lines[0], lines[3], rule)
	}
	if lines[1] != "Account  Last            First           MI  SS         Phone         Account" {
		t.Errorf("header line 1 = %q", lines[1])
	}
	if lines[2] != "Number   Name            Name                Number     Number        Balance" {
		t.Errorf("header line 2 = %q", lines[2])
	}

	wantRow := " A0001   " + pad("Doe", 14) + "  " + pad("Jane", 14) + "  J.  123456789  (555)5551234  100.00"
	if lines[4] != wantRow {
		t.Errorf("row = %q, want %q", lines[4], wantRow)
	}

	// Rows come out in account-number order, balances with two fraction
	// digits.
	if !strings.Contains(lines[5], "A0002") || !strings.Contains(lines[5], "10.50") {
		t.Errorf("second row = %q, want A0002 with balance 10.50", lines[5])
	}
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	store := testStore()
	Info(&buf, store.Find("A0001", "ABC123"))

	want := fmt.Sprintf("Jane\nDoe\nJ\n123456789\n555\n5551234\n%s\nA0001\nABC123\n", bankacct.M(100.0))
	if got := buf.String(); got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}
