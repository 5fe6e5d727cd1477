package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iris-graphql/iris/internal/lexer"
	"github.com/iris-graphql/iris/internal/source"
)

func lexAll(t *testing.T, body string) []*lexer.Token {
	t.Helper()
	l := lexer.New(source.New(body))
	var toks []*lexer.Token
	for {
		tok, err := l.Advance()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == lexer.EOF {
			break
		}
	}
	return toks
}

func TestLexesNamesAndPunctuators(t *testing.T) {
	toks := lexAll(t, `data Hello = { world: String? }`)
	kinds := make([]lexer.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	require.Equal(t, []lexer.Kind{
		lexer.NAME, lexer.NAME, lexer.EQUALS, lexer.BRACE_L,
		lexer.NAME, lexer.COLON, lexer.NAME, lexer.QUESTION, lexer.BRACE_R, lexer.EOF,
	}, kinds)
}

func TestDoublyLinkedListInvariant(t *testing.T) {
	l := lexer.New(source.New(`a b c`))
	require.Nil(t, l.SOF.Prev)

	var last *lexer.Token
	for {
		tok, err := l.Advance()
		require.NoError(t, err)
		if tok.Prev != nil {
			require.Equal(t, tok, tok.Prev.Next)
		}
		last = tok
		if tok.Kind == lexer.EOF {
			break
		}
	}
	require.Nil(t, last.Next)
}

func TestCommentsAreSkippedButReachable(t *testing.T) {
	l := lexer.New(source.New("# a comment\nworld"))
	tok, err := l.Advance()
	require.NoError(t, err)
	require.Equal(t, lexer.NAME, tok.Kind)
	require.Equal(t, "world", tok.Value)
	require.NotNil(t, tok.Prev)
	require.Equal(t, lexer.COMMENT, tok.Prev.Kind)
	require.Equal(t, " a comment", tok.Prev.Value)
}

func TestIntAndFloat(t *testing.T) {
	toks := lexAll(t, `0 -0 123 -45 1.5 1e10 1.2e-10`)
	var got []string
	for _, tok := range toks {
		if tok.Kind == lexer.EOF {
			continue
		}
		got = append(got, tok.Value)
	}
	require.Equal(t, []string{"0", "-0", "123", "-45", "1.5", "1e10", "1.2e-10"}, got)
	require.Equal(t, lexer.FLOAT, toks[4].Kind)
	require.Equal(t, lexer.INT, toks[0].Kind)
}

func TestLeadingZeroIsRejected(t *testing.T) {
	l := lexer.New(source.New(`0123`))
	_, err := l.Advance()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected digit after 0")
}

func TestEmptyExponentIsRejected(t *testing.T) {
	l := lexer.New(source.New(`1e`))
	_, err := l.Advance()
	require.Error(t, err)
}

func TestNameStartAfterNumberIsRejected(t *testing.T) {
	l := lexer.New(source.New(`1x`))
	_, err := l.Advance()
	require.Error(t, err)
}

func TestStringEscapes(t *testing.T) {
	l := lexer.New(source.New(`"a\nb\tcA\u{48}"`))
	tok, err := l.Advance()
	require.NoError(t, err)
	require.Equal(t, lexer.STRING, tok.Kind)
	require.Equal(t, "a\nb\tcAH", tok.Value)
}

func TestSurrogatePairEscape(t *testing.T) {
	l := lexer.New(source.New("\"\\uD83D\\uDE00\""))
	tok, err := l.Advance()
	require.NoError(t, err)
	require.Equal(t, "😀", tok.Value)
}

func TestLoneSurrogateEscapeRejected(t *testing.T) {
	l := lexer.New(source.New(`"\uD800"`))
	_, err := l.Advance()
	require.Error(t, err)
}

func TestUnterminatedString(t *testing.T) {
	l := lexer.New(source.New(`"abc`))
	_, err := l.Advance()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unterminated string")
}

func TestBlockStringDedent(t *testing.T) {
	l := lexer.New(source.New("\"\"\"\n    Hello,\n      World!\n\n    Yours,\n      GraphQL.\n  \"\"\""))
	tok, err := l.Advance()
	require.NoError(t, err)
	require.Equal(t, lexer.BLOCK_STRING, tok.Kind)
	require.Equal(t, "Hello,\n  World!\n\nYours,\n  GraphQL.", tok.Value)
}

func TestBlockStringEscapedTripleQuote(t *testing.T) {
	l := lexer.New(source.New(`"""a \""" b"""`))
	tok, err := l.Advance()
	require.NoError(t, err)
	require.Equal(t, `a """ b`, tok.Value)
}

func TestSingleQuoteSuggestsDoubleQuote(t *testing.T) {
	l := lexer.New(source.New(`'abc'`))
	_, err := l.Advance()
	require.Error(t, err)
	require.Contains(t, err.Error(), "did you mean to use a double-quote")
}

func TestSpreadPunctuator(t *testing.T) {
	toks := lexAll(t, `...`)
	require.Equal(t, lexer.SPREAD, toks[0].Kind)
}

func TestBOMIsSkipped(t *testing.T) {
	toks := lexAll(t, "\xef\xbb\xbfhello")
	require.Equal(t, lexer.NAME, toks[0].Kind)
	require.Equal(t, "hello", toks[0].Value)
}
