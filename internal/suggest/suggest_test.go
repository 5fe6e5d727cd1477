package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iris-graphql/iris/internal/suggest"
)

func TestDistanceIdentical(t *testing.T) {
	require.Equal(t, 0, suggest.Distance("Widget", "Widget"))
}

func TestDistanceSubstitution(t *testing.T) {
	require.Equal(t, 1, suggest.Distance("Widgat", "Widget"))
}

func TestDistanceTransposition(t *testing.T) {
	require.Equal(t, 1, suggest.Distance("Wigdet", "Widget"))
}

func TestDistanceInsertion(t *testing.T) {
	require.Equal(t, 1, suggest.Distance("Widgt", "Widget"))
}

func TestSuggestionsRanksByDistanceThenName(t *testing.T) {
	got := suggest.Suggestions("Sting", []string{"String", "Int", "Strang", "Boolean"})
	require.Equal(t, []string{"String", "Strang"}, got)
}

func TestSuggestionsExcludesExactMatch(t *testing.T) {
	got := suggest.Suggestions("String", []string{"String", "Strin"})
	require.Equal(t, []string{"Strin"}, got)
}

func TestSuggestionsCapsAtFive(t *testing.T) {
	options := []string{"Aa", "Ab", "Ac", "Ad", "Ae", "Af"}
	got := suggest.Suggestions("Ax", options)
	require.Len(t, got, 5)
}

func TestSuggestionsDropsFarMatches(t *testing.T) {
	got := suggest.Suggestions("Cat", []string{"Elephant"})
	require.Empty(t, got)
}

func TestQuotedOrList(t *testing.T) {
	require.Equal(t, `"A"`, suggest.QuotedOrList([]string{"A"}))
	require.Equal(t, `"A" or "B"`, suggest.QuotedOrList([]string{"A", "B"}))
	require.Equal(t, `"A", "B", or "C"`, suggest.QuotedOrList([]string{"A", "B", "C"}))
}
