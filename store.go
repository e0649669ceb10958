package bankacct

import (
	"iter"
	"sort"
)

// Store is the in-memory record store for one run: every account from
// the record file, sorted by account number. Accounts are mutated in
// place; none is ever created or deleted by the engine.
type Store struct {
	accounts []Account
}

// NewStore creates a store over the given accounts, sorted by number.
func NewStore(accounts []Account) *Store {
	s := &Store{accounts: accounts}
	sort.SliceStable(s.accounts, func(i, j int) bool {
		return s.accounts[i].Number < s.accounts[j].Number
	})
	return s
}

// Len returns the number of accounts in the store.
func (s *Store) Len() int { return len(s.accounts) }

// Find returns the account whose number and password both match by
// exact string equality, or nil when no such account exists.
func (s *Store) Find(number, password string) *Account {
	for i := range s.accounts {
		acc := &s.accounts[i]
		if acc.Number == number && acc.Password == password {
			return acc
		}
	}
	return nil
}

// Accounts yields every account in number order.
func (s *Store) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for i := range s.accounts {
			if !yield(&s.accounts[i]) {
				return
			}
		}
	}
}
