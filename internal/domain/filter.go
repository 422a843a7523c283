package domain

import (
	"strconv"
	"strings"
)

// PredicateKind tags the comparison a Predicate expresses.
type PredicateKind int

const (
	// PredicateEquals matches a column exactly.
	PredicateEquals PredicateKind = iota
	// PredicateILike matches a case-insensitive substring.
	PredicateILike
	// PredicateGte matches a numeric "at least" threshold.
	PredicateGte
	// PredicateInSet matches membership in an id set.
	PredicateInSet
)

// Predicate is a single backend-neutral filter condition.
type Predicate struct {
	Kind   PredicateKind
	Column string
	Value  any
}

// Sort describes the ordering of a list query.
type Sort struct {
	Column string
	Desc   bool
}

// Filter accumulates predicates parsed from loosely-typed query parameters.
// All parse helpers are forgiving: invalid input produces no predicate,
// never an error.
type Filter struct {
	Predicates []Predicate
	Sort       Sort
}

// Empty reports whether no predicates were produced.
func (f *Filter) Empty() bool {
	return len(f.Predicates) == 0
}

// Equals adds an exact-match predicate. Skipped when value is the zero string.
func (f *Filter) Equals(column string, value any) {
	if s, ok := value.(string); ok && s == "" {
		return
	}
	f.Predicates = append(f.Predicates, Predicate{Kind: PredicateEquals, Column: column, Value: value})
}

// ILike adds a case-insensitive substring predicate. Empty input is skipped.
func (f *Filter) ILike(column, substring string) {
	substring = strings.TrimSpace(substring)
	if substring == "" {
		return
	}
	f.Predicates = append(f.Predicates, Predicate{Kind: PredicateILike, Column: column, Value: substring})
}

// Gte adds a numeric threshold predicate parsed from raw.
// Absent or non-numeric input is ignored.
func (f *Filter) Gte(column, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}
	f.Predicates = append(f.Predicates, Predicate{Kind: PredicateGte, Column: column, Value: v})
}

// IDListDelimiter separates ids in a list-valued query parameter.
const IDListDelimiter = ";"

// IDList parses a delimited id list. Tokens are trimmed; non-numeric tokens
// are discarded. A single surviving id yields an equality predicate, multiple
// ids a membership predicate, zero ids nothing.
func (f *Filter) IDList(column, raw string) {
	var ids []int64
	for _, token := range strings.Split(raw, IDListDelimiter) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	switch len(ids) {
	case 0:
	case 1:
		f.Predicates = append(f.Predicates, Predicate{Kind: PredicateEquals, Column: column, Value: ids[0]})
	default:
		f.Predicates = append(f.Predicates, Predicate{Kind: PredicateInSet, Column: column, Value: ids})
	}
}

// ParseSort parses a "field:direction" pair against an allow-list mapping
// query field names to sort columns. Any unknown field, unknown direction,
// or absent input yields the fallback sort.
func ParseSort(raw string, allowed map[string]string, fallback Sort) Sort {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return fallback
	}

	column, ok := allowed[strings.TrimSpace(parts[0])]
	if !ok {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case "asc":
		return Sort{Column: column, Desc: false}
	case "desc":
		return Sort{Column: column, Desc: true}
	default:
		return fallback
	}
}
