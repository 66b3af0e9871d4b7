package view

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/usertable/internal/records"
)

// Order is a sort direction.
type Order string

// Sort directions.
const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// Sort expression errors.
var (
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'email:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseOrder parses "asc" or "desc" (case-insensitive). An empty string is ascending.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Ascending):
		return Ascending, nil
	case string(Descending):
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, s)
	}
}

// Toggle returns the opposite direction.
func (o Order) Toggle() Order {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// Arrow returns the header indicator for the direction.
func (o Order) Arrow() string {
	if o == Descending {
		return "↓"
	}
	return "↑"
}

// ParseSortExpression parses a sort string in the format "field" or "field:order".
// The order defaults to ascending. An empty expression means "unsorted".
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSortExpression(expr string) (field string, order Order, err error) {
	if strings.TrimSpace(expr) == "" {
		return "", Ascending, nil
	}

	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	field = strings.TrimSpace(parts[0])
	if field == "" {
		return "", "", ErrEmptySortField
	}

	order = Ascending
	if len(parts) == sortPartsMax {
		order, err = ParseOrder(parts[1])
		if err != nil {
			return "", "", err
		}
	}
	return field, order, nil
}

// Sort returns a copy of recs ordered by the value at key.
//
// Numbers compare numerically, strings by byte order and booleans false before
// true. Values of different kinds order as bool < number < string. Missing,
// null and nested values cannot be compared and always come last, whatever the
// direction. Records with equal keys keep their input order.
//
// An empty key returns recs unchanged.
func Sort(recs []records.Record, key string, order Order) []records.Record {
	if key == "" {
		return recs
	}

	sorted := make([]records.Record, len(recs))
	copy(sorted, recs)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, _ := sorted[i].Get(key)
		b, _ := sorted[j].Get(key)
		return less(a, b, order)
	})
	return sorted
}

func less(a, b any, order Order) bool {
	c, ok := Compare(a, b)
	if !ok {
		// comparable values go before non-comparable ones in both directions
		return kindOf(a) != kindNone && kindOf(b) == kindNone
	}
	if order == Descending {
		c = -c
	}
	return c < 0
}

// Compare orders two field values the way Sort does in ascending order.
// The second result is false when either value cannot be compared.
func Compare(a, b any) (int, bool) {
	ka, kb := kindOf(a), kindOf(b)
	if ka == kindNone || kb == kindNone {
		return 0, false
	}
	return compareKnown(a, b, ka, kb), true
}

type valueKind int

const (
	kindBool valueKind = iota
	kindNumber
	kindString
	kindNone
)

func kindOf(v any) valueKind {
	switch v.(type) {
	case bool:
		return kindBool
	case string:
		return kindString
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return kindNumber
	default:
		return kindNone
	}
}

func compareKnown(a, b any, ka, kb valueKind) int {
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch ka {
	case kindBool:
		ab, bb := a.(bool), b.(bool)
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	case kindNumber:
		return cmp.Compare(toFloat(a), toFloat(b))
	case kindString:
		return strings.Compare(a.(string), b.(string))
	default:
		return 0
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}
