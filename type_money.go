package bankacct

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyCode is the currency all accounts are denominated in. The
// record file carries bare amounts, so the code is fixed rather than
// persisted.
const currencyCode = "USD"

// Money is an exact monetary amount.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Decimal{}
}

// ParseMoney parses a decimal amount such as "100.00" or "30".
func ParseMoney(s string) (Money, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: value}, nil
}

// currency returns the account currency descriptor.
// to get a never nil currency it goes through the money.Money constructor.
func (m Money) currency() *money.Currency {
	return money.New(0, currencyCode).Currency()
}

// String returns the bare amount with no trailing zeros. This is the
// form persisted in the record file.
func (m Money) String() string { return m.value.String() }

// Display returns the amount with the currency's full fraction digits,
// the form used in report rows.
func (m Money) Display() string {
	return m.value.StringFixed(int32(m.currency().Fraction))
}

func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
