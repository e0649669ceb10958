// Package cmd wires the bankacct command line: it collects the raw
// switches, loads the record store, runs the action engine, and always
// persists the store back to the record file on the way out.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/etnz/bankacct"
	"github.com/etnz/bankacct/renderer"
)

// Process exit codes, one per run error.
const (
	ExitOK                = 0
	ExitNoDataFile        = 1 // the /D switch was never supplied
	ExitDataFile          = 2 // the record file could not be loaded
	ExitNoAccount         = 3 // an account was needed but not supplied
	ExitNoInfo            = 4 // information was needed but not supplied
	ExitReportFile        = 5 // the report file could not be written
	ExitNoTransferAccount = 6 // the transfer destination was not supplied
	ExitTooMuchTransfer   = 7 // the transfer would drive a balance negative
)

// Run executes one bankacct invocation over the raw arguments and
// returns the process exit code.
func Run(args []string) int {
	opts := bankacct.Collect(args)

	// Help does not short-circuit: the remaining switches are still
	// evaluated after the usage text is printed.
	if len(opts) == 0 || opts.Has(bankacct.OptHelp) {
		printHelp()
	}

	path, ok := dataFile(opts)
	if !ok {
		return ExitNoDataFile
	}

	store, err := loadStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR! Could not load %q: %v\n", path, err)
		return ExitDataFile
	}

	// The store is written back on every path out of the engine,
	// mutated or not, success or abort.
	runErr := runEngine(opts, store)
	if err := saveStore(path, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", path, err)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		return exitCode(runErr)
	}
	return ExitOK
}

// dataFile returns the record file path. When /D is supplied more than
// once, the last value is authoritative.
func dataFile(opts bankacct.Options) (string, bool) {
	values := opts[bankacct.OptData]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

func runEngine(opts bankacct.Options, store *bankacct.Store) error {
	engine := &bankacct.Engine{
		Store:   store,
		Options: opts,
		Info:    func(acc *bankacct.Account) { renderer.Info(os.Stdout, acc) },
		Report:  writeReport,
	}
	return engine.Run()
}

// writeReport renders the report for the whole store into the file at
// path. Failure to open the destination is the only error it reports.
func writeReport(store *bankacct.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	renderer.Report(f, store)
	return nil
}

func loadStore(path string) (*bankacct.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	accounts, err := bankacct.DecodeAccounts(f)
	if err != nil {
		return nil, err
	}
	return bankacct.NewStore(accounts), nil
}

func saveStore(path string, store *bankacct.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bankacct.EncodeAccounts(f, store); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// exitCode maps a run error to its process exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, bankacct.ErrNoAccount):
		return ExitNoAccount
	case errors.Is(err, bankacct.ErrNoInfo):
		return ExitNoInfo
	case errors.Is(err, bankacct.ErrReportFile):
		return ExitReportFile
	case errors.Is(err, bankacct.ErrNoTransferAccount):
		return ExitNoTransferAccount
	case errors.Is(err, bankacct.ErrTooMuchTransfer):
		return ExitTooMuchTransfer
	}
	return ExitNoDataFile
}
