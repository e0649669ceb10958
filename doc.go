// Package bankacct implements the account database and the action engine
// behind the `bankacct` command-line tool.
//
// One invocation loads every account record from a flat text file,
// applies the field mutations, transfers and report actions described by
// `/X<value>` switches, and writes the record set back to the same file
// on the way out, whether or not the run succeeded.
//
// The core pieces are:
//   - Option Collection: raw arguments are sorted into per-code FIFO
//     queues, and values are consumed exactly once through Yank.
//   - Account Resolution: actions identify their account with a
//     number/password pair, or inherit the account resolved by the
//     previous action when no credentials were supplied.
//   - Action Engine: actions run in a fixed priority order, independent
//     of the order switches appeared on the command line, with every new
//     field value validated against its format pattern before assignment.
//   - Transfer Invariant: a transfer never drives the source balance
//     negative; it either moves the full amount or changes nothing.
package bankacct
