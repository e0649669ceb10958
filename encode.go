package bankacct

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// recordTokens is the number of whitespace-delimited tokens that make
// one account record, in this order: last, first, middle, social, area,
// phone, balance, number, password.
const recordTokens = 9

// DecodeAccounts reads whitespace-delimited account records from r.
// Reading stops cleanly at end of input; a record cut short before its
// last token is discarded, not partially loaded.
func DecodeAccounts(r io.Reader) ([]Account, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var accounts []Account
	for {
		tokens := make([]string, 0, recordTokens)
		for len(tokens) < recordTokens && scanner.Scan() {
			tokens = append(tokens, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading records: %w", err)
		}
		if len(tokens) < recordTokens {
			return accounts, nil
		}
		acc, err := decodeAccount(tokens)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
}

func decodeAccount(tokens []string) (Account, error) {
	social, err := parseUintToken("social security number", tokens[3])
	if err != nil {
		return Account{}, err
	}
	area, err := parseUintToken("area code", tokens[4])
	if err != nil {
		return Account{}, err
	}
	phone, err := parseUintToken("phone number", tokens[5])
	if err != nil {
		return Account{}, err
	}
	balance, err := ParseMoney(tokens[6])
	if err != nil {
		return Account{}, fmt.Errorf("invalid balance: %w", err)
	}
	return Account{
		Last:     tokens[0],
		First:    tokens[1],
		Middle:   tokens[2],
		Social:   social,
		Area:     area,
		Phone:    phone,
		Balance:  balance,
		Number:   tokens[7],
		Password: tokens[8],
	}, nil
}

func parseUintToken(field, token string) (uint, error) {
	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, token, err)
	}
	return uint(n), nil
}

// EncodeAccounts persists every account of the store to w, one token per
// line, with a blank line after each record. All records are written,
// mutated or not.
func EncodeAccounts(w io.Writer, store *Store) error {
	bw := bufio.NewWriter(w)
	for acc := range store.Accounts() {
		fmt.Fprintln(bw, acc.Last)
		fmt.Fprintln(bw, acc.First)
		fmt.Fprintln(bw, acc.Middle)
		fmt.Fprintln(bw, acc.Social)
		fmt.Fprintln(bw, acc.Area)
		fmt.Fprintln(bw, acc.Phone)
		fmt.Fprintln(bw, acc.Balance)
		fmt.Fprintln(bw, acc.Number)
		fmt.Fprintln(bw, acc.Password)
		fmt.Fprintln(bw)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing records: %w", err)
	}
	return nil
}
