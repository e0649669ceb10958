package bankacct

// Marker is the character every command-line switch starts with.
const Marker = '/'

// Option codes. The second character of a switch identifies its role;
// the remainder of the argument, possibly empty, is the attached value.
const (
	OptHelp     byte = '?' // display the usage text
	OptData     byte = 'D' // record file to load and write back
	OptArea     byte = 'A' // change the area code
	OptFirst    byte = 'F' // change the first name
	OptPhone    byte = 'H' // change the phone number
	OptLast     byte = 'L' // change the last name
	OptMiddle   byte = 'M' // change the middle initial
	OptSocial   byte = 'S' // change the social security number
	OptTransfer byte = 'T' // transfer money between two accounts
	OptPassword byte = 'W' // change the password
	OptInfo     byte = 'I' // display the information of an account
	OptReport   byte = 'R' // write a report file
	OptNumber   byte = 'N' // account number for an action
	OptPass     byte = 'P' // account password for an action
)

// Codes lists every recognized option code.
func Codes() []byte {
	return []byte{
		OptHelp, OptData,
		OptArea, OptFirst, OptPhone, OptLast, OptMiddle, OptSocial,
		OptTransfer, OptPassword,
		OptInfo, OptReport,
		OptNumber, OptPass,
	}
}

// Options maps an option code to the queue of values supplied for it, in
// supply order.
//
// For the command line
//
//	bankacct /Fblah /Hblah2 /Fblah3
//
// the map holds [F] -> {blah, blah3} and [H] -> {blah2}.
type Options map[byte][]string

// Collect sorts raw command-line arguments into an Options map. An
// argument that does not start with the marker followed by at least one
// character is silently ignored. Collect never inspects option
// semantics.
func Collect(args []string) Options {
	opts := make(Options)
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != Marker {
			continue
		}
		opts[arg[1]] = append(opts[arg[1]], arg[2:])
	}
	return opts
}

// Yank returns and removes the oldest remaining value queued for code.
// It reports false when the code was never supplied or its queue is
// exhausted. Yank is the only way values are read out of the map, so
// each switch occurrence is consumed exactly once.
func (o Options) Yank(code byte) (string, bool) {
	queue := o[code]
	if len(queue) == 0 {
		return "", false
	}
	o[code] = queue[1:]
	return queue[0], true
}

// Has reports whether code was supplied at all, even if its queue has
// since been exhausted by Yank.
func (o Options) Has(code byte) bool {
	_, ok := o[code]
	return ok
}
