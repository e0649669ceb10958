package bankacct

import "fmt"

// actionOrder is the fixed priority order mutation actions are evaluated
// in. It is a declared sequence on purpose: evaluation order must not
// depend on how the option codes happen to sort or iterate.
var actionOrder = []byte{
	OptArea,
	OptFirst,
	OptPhone,
	OptLast,
	OptMiddle,
	OptSocial,
	OptTransfer,
	OptPassword,
}

// Engine walks the collected options in priority order and applies each
// matching action to the record store in place. It stops at the first
// error; whatever was already applied stays applied.
type Engine struct {
	Store   *Store
	Options Options

	// Info writes the field dump for one account to standard output.
	Info func(*Account)
	// Report renders the whole store to the file at path. Failure to
	// open the destination is its only reportable error.
	Report func(store *Store, path string) error

	// previous is the account resolved by the last evaluated action,
	// the fallback for actions supplied without credentials.
	previous *Account
}

// Run evaluates the mutation actions in priority order, then the info
// and report actions. It returns the first error encountered, wrapping
// one of the run error sentinels. Option codes outside the recognized
// set are ignored.
func (e *Engine) Run() error {
	for _, code := range actionOrder {
		if !e.Options.Has(code) {
			continue
		}
		var err error
		if code == OptTransfer {
			err = e.transfer()
		} else {
			err = e.mutate(code)
		}
		if err != nil {
			return err
		}
	}

	if e.Options.Has(OptInfo) {
		// The info switch's own value is consumed and discarded.
		e.Options.Yank(OptInfo)
		acc, err := e.resolve()
		if err != nil {
			return err
		}
		e.previous = acc
		e.Info(acc)
	}

	if e.Options.Has(OptReport) {
		path, _ := e.Options.Yank(OptReport)
		if err := e.Report(e.Store, path); err != nil {
			return fmt.Errorf("report %q: %v: %w", path, err, ErrReportFile)
		}
	}

	return nil
}

// mutate applies one field mutation action: resolve the acting account,
// yank the new value, validate, assign, and remember the account as the
// fallback for the next action.
func (e *Engine) mutate(code byte) error {
	acc, err := e.resolve()
	if err != nil {
		return err
	}
	value, ok := e.Options.Yank(code)
	if !ok {
		return fmt.Errorf("missing value for /%c: %w", code, ErrNoInfo)
	}
	if err := setField(acc, code, value); err != nil {
		return err
	}
	e.previous = acc
	return nil
}

func setField(acc *Account, code byte, value string) error {
	switch code {
	case OptArea:
		return acc.SetArea(value)
	case OptFirst:
		return acc.SetFirst(value)
	case OptPhone:
		return acc.SetPhone(value)
	case OptLast:
		return acc.SetLast(value)
	case OptMiddle:
		return acc.SetMiddle(value)
	case OptSocial:
		return acc.SetSocial(value)
	case OptPassword:
		return acc.SetPassword(value)
	}
	return fmt.Errorf("no mutable field for option /%c: %w", code, ErrNoInfo)
}

// transfer moves a whole-number amount between two accounts, each
// resolved from its own credential pair. The source balance is checked
// before anything is mutated, so a refused transfer changes nothing.
func (e *Engine) transfer() error {
	src, err := e.resolveStrict(ErrNoAccount)
	if err != nil {
		return err
	}
	dst, err := e.resolveStrict(ErrNoTransferAccount)
	if err != nil {
		return err
	}
	value, ok := e.Options.Yank(OptTransfer)
	if !ok || !reAmount.MatchString(value) {
		return fmt.Errorf("transfer amount %q: %w", value, ErrNoInfo)
	}
	amount, err := ParseMoney(value)
	if err != nil {
		return fmt.Errorf("transfer amount: %w", ErrNoInfo)
	}
	if err := Transfer(src, dst, amount); err != nil {
		return err
	}
	e.previous = src
	return nil
}

// resolve finds the acting account for one action.
//
// With a full credential pair it is a strict lookup: a pair matching no
// record is a hard failure, even when a previous action resolved an
// account. With credentials absent it falls back to the account
// resolved by the previous action in the same run.
func (e *Engine) resolve() (*Account, error) {
	number, okN := e.Options.Yank(OptNumber)
	password, okP := e.Options.Yank(OptPass)
	if okN && okP {
		if acc := e.Store.Find(number, password); acc != nil {
			return acc, nil
		}
		return nil, fmt.Errorf("account %q: %w", number, ErrNoAccount)
	}
	if e.previous != nil {
		return e.previous, nil
	}
	return nil, ErrNoAccount
}

// resolveStrict requires a full, matching credential pair: transfers
// never inherit an account from a previous action.
func (e *Engine) resolveStrict(sentinel error) (*Account, error) {
	number, okN := e.Options.Yank(OptNumber)
	password, okP := e.Options.Yank(OptPass)
	if !okN || !okP {
		return nil, sentinel
	}
	if acc := e.Store.Find(number, password); acc != nil {
		return acc, nil
	}
	return nil, fmt.Errorf("account %q: %w", number, sentinel)
}
