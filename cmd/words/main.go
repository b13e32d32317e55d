// Command words looks up synonyms or antonyms for a single word against the
// remote words API and prints the result as one line to stdout.
//
// Usage:
//
//	words <synonyms|antonyms> <word>
//
// Requires WORDS_TOKEN environment variable to be set.
//
// The process always exits 0: failures are reported as a fixed message on
// stdout, with the detailed cause logged to stderr.
package main

import (
	"context"
	"os"

	"github.com/charlescharles/words/internal/app"
)

func main() {
	app.New().Run(context.Background(), os.Args[1:], os.Stdout)
}
