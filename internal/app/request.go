package app

import (
	"fmt"

	"github.com/charlescharles/words/internal/domain"
)

// ParseRequest turns raw CLI arguments (everything after the program name)
// into a LookupRequest. Exactly two positional arguments are required: the
// relation and the word. The word is taken verbatim, with no trimming or
// case folding.
func ParseRequest(args []string) (domain.LookupRequest, error) {
	if len(args) != 2 {
		return domain.LookupRequest{}, fmt.Errorf("expected 2 arguments, got %d: %w", len(args), domain.ErrInvalidArgs)
	}

	relation, err := domain.ParseRelation(args[0])
	if err != nil {
		return domain.LookupRequest{}, err
	}

	return domain.LookupRequest{Relation: relation, Word: args[1]}, nil
}
