package domain

import "errors"

// Sentinel errors for the closed set of user-facing failures.
// Their text is exactly the line the CLI prints.
var (
	ErrNoResults     = errors.New("no results found")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidArgs   = errors.New("invalid arguments")
)

// UserMessage renders err as the single line shown to the user.
// Classification goes through errors.Is, so wrapped causes keep their
// taxonomy identity. Anything that carries no recognized sentinel reads
// as a failed lookup.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgs):
		return ErrInvalidArgs.Error()
	case errors.Is(err, ErrInvalidConfig):
		return ErrInvalidConfig.Error()
	default:
		return ErrNoResults.Error()
	}
}
