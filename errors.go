package bankacct

import "errors"

// Run errors. Each one maps to a distinct process exit code in cmd, so
// engine errors always wrap exactly one of them.
var (
	// ErrNoAccount is returned when an action needed an account and none
	// could be resolved, or an explicit credential pair matched no record.
	ErrNoAccount = errors.New("account needed but not supplied")

	// ErrNoInfo is returned when an action's new value is missing or does
	// not match the field's format pattern.
	ErrNoInfo = errors.New("information needed but not supplied")

	// ErrReportFile is returned when the report destination could not be
	// written.
	ErrReportFile = errors.New("report file could not be written")

	// ErrNoTransferAccount is returned when the destination account of a
	// transfer could not be resolved.
	ErrNoTransferAccount = errors.New("transfer destination account needed but not supplied")

	// ErrTooMuchTransfer is returned when a transfer would drive the
	// source balance negative. Neither balance changes.
	ErrTooMuchTransfer = errors.New("transfer amount exceeds the source balance")
)
