package domain

import (
	"reflect"
	"testing"
)

func TestFilter_Equals(t *testing.T) {
	var f Filter
	f.Equals("species_id", int64(4))
	f.Equals("state", "MN")
	f.Equals("name", "") // zero string skipped

	if len(f.Predicates) != 2 {
		t.Fatalf("predicates: got %d, want 2", len(f.Predicates))
	}
	if f.Predicates[0].Kind != PredicateEquals || f.Predicates[0].Value != int64(4) {
		t.Errorf("unexpected predicate %+v", f.Predicates[0])
	}
}

func TestFilter_ILike(t *testing.T) {
	var f Filter
	f.ILike("brand", "  lure ")
	f.ILike("color", "")
	f.ILike("name", "   ")

	if len(f.Predicates) != 1 {
		t.Fatalf("predicates: got %d, want 1", len(f.Predicates))
	}
	p := f.Predicates[0]
	if p.Kind != PredicateILike || p.Column != "brand" || p.Value != "lure" {
		t.Errorf("unexpected predicate %+v", p)
	}
}

func TestFilter_Gte(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Predicate
	}{
		{"valid float", "12.5", []Predicate{{Kind: PredicateGte, Column: "length", Value: 12.5}}},
		{"valid int", "20", []Predicate{{Kind: PredicateGte, Column: "length", Value: 20.0}}},
		{"invalid input ignored", "huge", nil},
		{"empty input ignored", "", nil},
		{"whitespace ignored", "  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Filter
			f.Gte("length", tt.raw)
			if !reflect.DeepEqual(f.Predicates, tt.want) {
				t.Errorf("got %+v, want %+v", f.Predicates, tt.want)
			}
		})
	}
}

func TestFilter_IDList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Predicate
	}{
		{
			"multiple ids",
			"1;2;3",
			[]Predicate{{Kind: PredicateInSet, Column: "lure_id", Value: []int64{1, 2, 3}}},
		},
		{
			"single id becomes equality",
			"42",
			[]Predicate{{Kind: PredicateEquals, Column: "lure_id", Value: int64(42)}},
		},
		{
			"tokens trimmed, junk discarded",
			" 5 ; spoon ; 9 ",
			[]Predicate{{Kind: PredicateInSet, Column: "lure_id", Value: []int64{5, 9}}},
		},
		{
			"junk collapses to single id",
			"x;7;y",
			[]Predicate{{Kind: PredicateEquals, Column: "lure_id", Value: int64(7)}},
		},
		{"all junk", "a;b", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Filter
			f.IDList("lure_id", tt.raw)
			if !reflect.DeepEqual(f.Predicates, tt.want) {
				t.Errorf("got %+v, want %+v", f.Predicates, tt.want)
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	allowed := map[string]string{
		"date":   "date",
		"length": "length",
		"weight": "weight",
	}
	fallback := Sort{Column: "caught_at", Desc: true}

	tests := []struct {
		name string
		raw  string
		want Sort
	}{
		{"valid asc", "length:asc", Sort{Column: "length", Desc: false}},
		{"valid desc", "weight:desc", Sort{Column: "weight", Desc: true}},
		{"direction case-insensitive", "date:DESC", Sort{Column: "date", Desc: true}},
		{"unknown field falls back", "girth:asc", fallback},
		{"unknown direction falls back", "date:sideways", fallback},
		{"missing direction falls back", "date", fallback},
		{"absent falls back", "", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSort(tt.raw, allowed, fallback)
			if got != tt.want {
				t.Errorf("ParseSort(%q): got %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

// Absent orderBy and an unrecognized orderBy must produce the same ordering.
func TestParseSort_FallbackEqualsDefault(t *testing.T) {
	allowed := map[string]string{"date": "date"}
	fallback := Sort{Column: "caught_at", Desc: true}

	if ParseSort("", allowed, fallback) != ParseSort("bogus:up", allowed, fallback) {
		t.Error("fallback for invalid input must match the no-input default")
	}
}

func TestFilter_Empty(t *testing.T) {
	var f Filter
	if !f.Empty() {
		t.Error("new filter should be empty")
	}
	f.Gte("length", "not-a-number")
	if !f.Empty() {
		t.Error("ignored input should leave filter empty")
	}
	f.Equals("user_id", int64(1))
	if f.Empty() {
		t.Error("filter with a predicate is not empty")
	}
}
