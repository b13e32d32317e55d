package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	path  string
	query url.Values
}

func newWordsServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var calls []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, recordedRequest{path: r.URL.Path, query: r.URL.Query()})
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func runApp(t *testing.T, baseURL string, args []string) string {
	t.Helper()

	var out bytes.Buffer
	NewWithURL(baseURL).Run(context.Background(), args, &out)
	return out.String()
}

func TestRun_SynonymsSuccess(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "secret-token")

	srv, calls := newWordsServer(t, http.StatusOK,
		`{"word":"happy","synonyms":["glad","content"]}`)

	out := runApp(t, srv.URL, []string{"synonyms", "happy"})

	assert.Equal(t, "glad, content\n", out)
	require.Len(t, *calls, 1)
	assert.Equal(t, "/happy/synonyms", (*calls)[0].path)
	assert.Equal(t, "secret-token", (*calls)[0].query.Get("accessToken"))
}

func TestRun_AntonymsSuccess(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "secret-token")

	srv, calls := newWordsServer(t, http.StatusOK,
		`{"word":"hot","antonyms":["cold"]}`)

	out := runApp(t, srv.URL, []string{"antonyms", "hot"})

	assert.Equal(t, "cold\n", out, "single result is printed without separators")
	require.Len(t, *calls, 1)
	assert.Equal(t, "/hot/antonyms", (*calls)[0].path)
}

func TestRun_RelationCaseInsensitive(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "secret-token")

	srv, _ := newWordsServer(t, http.StatusOK,
		`{"word":"happy","synonyms":["glad"]}`)

	out := runApp(t, srv.URL, []string{"SYNONYMS", "happy"})

	assert.Equal(t, "glad\n", out)
}

func TestRun_EmptyResultList(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "secret-token")

	srv, calls := newWordsServer(t, http.StatusOK,
		`{"word":"happy","antonyms":[]}`)

	out := runApp(t, srv.URL, []string{"Antonyms", "happy"})

	assert.Equal(t, "no results found\n", out)
	assert.Len(t, *calls, 1)
}

func TestRun_ServerFailure(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "secret-token")

	srv, _ := newWordsServer(t, http.StatusInternalServerError, `boom`)

	out := runApp(t, srv.URL, []string{"synonyms", "happy"})

	assert.Equal(t, "no results found\n", out)
}

func TestRun_TransportFailure(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "secret-token")

	srv, _ := newWordsServer(t, http.StatusOK, `{}`)
	srv.Close()

	out := runApp(t, srv.URL, []string{"synonyms", "happy"})

	assert.Equal(t, "no results found\n", out)
}

func TestRun_UnknownRelation(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "secret-token")

	srv, calls := newWordsServer(t, http.StatusOK, `{}`)

	out := runApp(t, srv.URL, []string{"homonyms", "happy"})

	assert.Equal(t, "invalid arguments\n", out)
	assert.Empty(t, *calls, "no lookup should be attempted for a bad relation")
}

func TestRun_WrongArgumentCount(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "secret-token")

	srv, calls := newWordsServer(t, http.StatusOK, `{}`)

	for _, args := range [][]string{
		{},
		{"synonyms"},
		{"synonyms", "happy", "extra"},
	} {
		out := runApp(t, srv.URL, args)
		assert.Equalf(t, "invalid arguments\n", out, "args: %v", args)
	}
	assert.Empty(t, *calls)
}

func TestRun_MissingToken(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "anything")
	require.NoError(t, os.Unsetenv("WORDS_TOKEN"))

	srv, calls := newWordsServer(t, http.StatusOK,
		`{"word":"happy","synonyms":["glad"]}`)

	out := runApp(t, srv.URL, []string{"synonyms", "happy"})

	assert.Equal(t, "invalid configuration\n", out)
	assert.Empty(t, *calls, "no lookup should be attempted without configuration")
}

func TestRun_ConfigCheckedBeforeArguments(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "anything")
	require.NoError(t, os.Unsetenv("WORDS_TOKEN"))

	out := runApp(t, "http://127.0.0.1:0", []string{"not-a-relation"})

	assert.Equal(t, "invalid configuration\n", out,
		"configuration failure wins when the arguments are bad too")
}

func TestRun_AlwaysWritesExactlyOneLine(t *testing.T) {
	t.Setenv("WORDS_TOKEN", "secret-token")

	srv, _ := newWordsServer(t, http.StatusOK,
		`{"word":"happy","synonyms":["glad","content"]}`)

	for _, args := range [][]string{
		{"synonyms", "happy"},
		{"antonyms", "happy"},
		{"bogus", "happy"},
		{"synonyms"},
	} {
		out := runApp(t, srv.URL, args)
		assert.Equalf(t, 1, strings.Count(out, "\n"), "args %v: output %q", args, out)
		assert.Truef(t, strings.HasSuffix(out, "\n"), "args %v: output %q", args, out)
	}
}
