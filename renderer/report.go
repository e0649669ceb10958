// Package renderer renders account records for human consumption: the
// fixed-width report table and the plain info dump.
package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/bankacct"
)

// Report writes the fixed-width account report to w: four header lines
// and one row per account, in account-number order.
func Report(w io.Writer, store *bankacct.Store) {
	fmt.Fprintln(w, "-------  ----            -----           --  ---------  ------------  -------")
	fmt.Fprintln(w, "Account  Last            First           MI  SS         Phone         Account")
	fmt.Fprintln(w, "Number   Name            Name                Number     Number        Balance")
	fmt.Fprintln(w, "-------  ----            -----           --  ---------  ------------  -------")

	for acc := range store.Accounts() {
		fmt.Fprintf(w, " %s   %-14s  %-14s  %s.  %d  (%d)%d  %s\n",
			acc.Number,
			acc.Last,
			acc.First,
			acc.Middle,
			acc.Social,
			acc.Area,
			acc.Phone,
			acc.Balance.Display(),
		)
	}
}
