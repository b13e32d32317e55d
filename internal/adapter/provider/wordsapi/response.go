package wordsapi

import "github.com/charlescharles/words/internal/domain"

// apiRelations represents the words API response for a relation lookup.
// The service populates only the field matching the requested relation.
type apiRelations struct {
	Word     string   `json:"word"`
	Synonyms []string `json:"synonyms"`
	Antonyms []string `json:"antonyms"`
}

// listFor returns the word list matching the requested relation.
func (r apiRelations) listFor(relation domain.Relation) []string {
	switch relation {
	case domain.RelationSynonyms:
		return r.Synonyms
	case domain.RelationAntonyms:
		return r.Antonyms
	}
	return nil
}
