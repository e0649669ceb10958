package bankacct

// jane is the first well-formed test record used across the tests.
func jane() Account {
	return Account{
		First:    "Jane",
		Last:     "Doe",
		Middle:   "J",
		Social:   123456789,
		Area:     555,
		Phone:    5551234,
		Balance:  M(100.0),
		Number:   "A0001",
		Password: "ABC123",
	}
}

// john is the second well-formed test record.
func john() Account {
	return Account{
		First:    "John",
		Last:     "Smith",
		Middle:   "Q",
		Social:   987654321,
		Area:     444,
		Phone:    5554321,
		Balance:  M(10.0),
		Number:   "A0002",
		Password: "XYZ789",
	}
}

// newTestStore builds a store over the two test records, supplied out of
// number order on purpose.
func newTestStore() *Store {
	return NewStore([]Account{john(), jane()})
}
