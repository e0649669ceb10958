package bankacct

import "regexp"

// Field format patterns. Every pattern is anchored: a candidate value is
// validated as a whole before it is written into an account field.
var (
	reArea     = regexp.MustCompile(`^\d{3}$`)
	rePhone    = regexp.MustCompile(`^\d{7}$`)
	reSocial   = regexp.MustCompile(`^\d{9}$`)
	reName     = regexp.MustCompile(`^[A-Za-z]*$`)
	reMiddle   = regexp.MustCompile(`^[A-Za-z]$`)
	rePassword = regexp.MustCompile(`^[A-Z0-9]{6}$`)

	// reAmount accepts whole currency amounts for transfers.
	reAmount = regexp.MustCompile(`^\d+$`)
)

// legacyAmountPattern is the transfer-amount check the historical
// implementation performed: it reused the alphabetic name pattern, under
// which no numeric amount can pass and no passing value survives numeric
// conversion. The engine validates amounts with reAmount instead; this
// declaration documents the old behavior and is covered by tests.
var legacyAmountPattern = regexp.MustCompile(`^[A-Za-z]*$`)
