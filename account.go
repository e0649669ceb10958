package bankacct

import (
	"fmt"
	"regexp"
	"strconv"
)

// Account is one bank customer record.
//
// Number is the unique key across the store and is never mutated once
// loaded. Social, Area and Phone are stored as unsigned integers, so a
// leading zero in the record file does not survive a round trip.
type Account struct {
	First    string
	Last     string
	Middle   string // single alphabetic initial
	Social   uint
	Area     uint
	Phone    uint
	Balance  Money
	Number   string
	Password string
}

// SetArea validates and assigns a new 3-digit area code.
func (a *Account) SetArea(value string) error {
	n, err := matchUint(reArea, value)
	if err != nil {
		return fmt.Errorf("area code: %w", err)
	}
	a.Area = n
	return nil
}

// SetFirst validates and assigns a new first name, alphabetic only.
func (a *Account) SetFirst(value string) error {
	if !reName.MatchString(value) {
		return fmt.Errorf("first name %q: %w", value, ErrNoInfo)
	}
	a.First = value
	return nil
}

// SetPhone validates and assigns a new 7-digit phone number.
func (a *Account) SetPhone(value string) error {
	n, err := matchUint(rePhone, value)
	if err != nil {
		return fmt.Errorf("phone number: %w", err)
	}
	a.Phone = n
	return nil
}

// SetLast validates and assigns a new last name, alphabetic only.
func (a *Account) SetLast(value string) error {
	if !reName.MatchString(value) {
		return fmt.Errorf("last name %q: %w", value, ErrNoInfo)
	}
	a.Last = value
	return nil
}

// SetMiddle validates and assigns a new middle initial, one alphabetic
// character.
func (a *Account) SetMiddle(value string) error {
	if !reMiddle.MatchString(value) {
		return fmt.Errorf("middle initial %q: %w", value, ErrNoInfo)
	}
	a.Middle = value
	return nil
}

// SetSocial validates and assigns a new 9-digit social security number.
func (a *Account) SetSocial(value string) error {
	n, err := matchUint(reSocial, value)
	if err != nil {
		return fmt.Errorf("social security number: %w", err)
	}
	a.Social = n
	return nil
}

// SetPassword validates and assigns a new password. Only a new value is
// checked against the pattern; the existing password is compared by
// exact equality during resolution.
func (a *Account) SetPassword(value string) error {
	if !rePassword.MatchString(value) {
		return fmt.Errorf("password %q: %w", value, ErrNoInfo)
	}
	a.Password = value
	return nil
}

// matchUint validates value against an anchored digits pattern and
// converts it.
func matchUint(re *regexp.Regexp, value string) (uint, error) {
	if !re.MatchString(value) {
		return 0, fmt.Errorf("%q: %w", value, ErrNoInfo)
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", value, ErrNoInfo)
	}
	return uint(n), nil
}

// Transfer moves amount from one account to another. Both balances
// change or neither does: an amount the source balance cannot cover is
// refused with ErrTooMuchTransfer.
func Transfer(from, to *Account, amount Money) error {
	if from.Balance.LessThan(amount) {
		return fmt.Errorf("balance %s cannot cover %s: %w", from.Balance.Display(), amount.Display(), ErrTooMuchTransfer)
	}
	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)
	return nil
}
