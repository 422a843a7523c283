package postgres

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/msaemrow/anglers-index-api/internal/domain"
)

// Builder is the shared squirrel statement builder with PostgreSQL
// placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ApplyFilter translates a backend-neutral filter descriptor into squirrel
// conditions on a SELECT. Predicate columns may carry a table qualifier
// (e.g. "c.species_id") when the caller joins.
func ApplyFilter(b squirrel.SelectBuilder, f domain.Filter) squirrel.SelectBuilder {
	for _, p := range f.Predicates {
		switch p.Kind {
		case domain.PredicateEquals:
			b = b.Where(squirrel.Eq{p.Column: p.Value})
		case domain.PredicateILike:
			b = b.Where(squirrel.ILike{p.Column: fmt.Sprintf("%%%v%%", p.Value)})
		case domain.PredicateGte:
			b = b.Where(squirrel.GtOrEq{p.Column: p.Value})
		case domain.PredicateInSet:
			// squirrel renders a slice value as an IN clause.
			b = b.Where(squirrel.Eq{p.Column: p.Value})
		}
	}

	if f.Sort.Column != "" {
		direction := "ASC"
		if f.Sort.Desc {
			direction = "DESC"
		}
		b = b.OrderBy(f.Sort.Column + " " + direction)
	}

	return b
}
