package postgres

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// rowScanner is implemented by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Numeric columns are selected as text so no precision is lost on the way
// into decimal.Decimal.
func parseMoney(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse numeric %q: %w", raw, err)
	}

	return amount, nil
}

func uniqueSorted(ids []int64) []int64 {
	result := slices.Clone(ids)
	slices.Sort(result)
	return slices.Compact(result)
}
