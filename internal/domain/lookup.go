package domain

import (
	"fmt"
	"strings"
)

// Relation identifies which lexical relation a lookup asks for.
type Relation string

const (
	RelationSynonyms Relation = "synonyms"
	RelationAntonyms Relation = "antonyms"
)

func (r Relation) String() string { return string(r) }

func (r Relation) IsValid() bool {
	switch r {
	case RelationSynonyms, RelationAntonyms:
		return true
	}
	return false
}

// ParseRelation matches a raw CLI token against the two known relations,
// ignoring case. The whole token must match; there is no prefix or fuzzy
// matching. Anything else fails with ErrInvalidArgs.
func ParseRelation(s string) (Relation, error) {
	switch r := Relation(strings.ToLower(s)); r {
	case RelationSynonyms, RelationAntonyms:
		return r, nil
	}
	return "", fmt.Errorf("unknown relation %q: %w", s, ErrInvalidArgs)
}

// LookupRequest is one parsed CLI invocation: which relation to fetch
// for which word. Constructed once, never mutated.
type LookupRequest struct {
	Relation Relation
	Word     string
}
