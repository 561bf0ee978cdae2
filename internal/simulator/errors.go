package simulator

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/market"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/portfolio"
)

// Trade and construction errors. All of them leave the simulator untouched.
var (
	ErrUnknownSymbol      = errors.New("unknown symbol")
	ErrInvalidQuantity    = portfolio.ErrInvalidQuantity
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = portfolio.ErrInsufficientShares
	ErrDuplicateSymbol    = market.ErrDuplicateSymbol
	ErrInvalidCash        = errors.New("initial cash must not be negative")
	ErrInvalidInterval    = errors.New("tick interval must be positive")
)

// ParseQuantity turns user-entered text into a share count.
// Only base-10 positive integers are accepted; "1.5", "0", "-3" and "abc" are not.
func ParseQuantity(text string) (int64, error) {
	s := strings.TrimSpace(text)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, &QuantityError{Input: text}
	}
	return n, nil
}

// QuantityError reports unparsable quantity text. It matches ErrInvalidQuantity.
type QuantityError struct {
	Input string
}

func (e *QuantityError) Error() string {
	return ErrInvalidQuantity.Error() + ": " + strconv.Quote(e.Input)
}

func (e *QuantityError) Unwrap() error { return ErrInvalidQuantity }
