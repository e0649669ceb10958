package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/bankacct"
)

// Info writes the field dump for one account to w, one field per line,
// in fixed order: first, last, middle, social, area, phone, balance,
// number, password.
func Info(w io.Writer, acc *bankacct.Account) {
	fmt.Fprintln(w, acc.First)
	fmt.Fprintln(w, acc.Last)
	fmt.Fprintln(w, acc.Middle)
	fmt.Fprintln(w, acc.Social)
	fmt.Fprintln(w, acc.Area)
	fmt.Fprintln(w, acc.Phone)
	fmt.Fprintln(w, acc.Balance)
	fmt.Fprintln(w, acc.Number)
	fmt.Fprintln(w, acc.Password)
}
