package ierror_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iris-graphql/iris/internal/ierror"
	"github.com/iris-graphql/iris/internal/source"
)

type fakeNode struct {
	pos int
	src *source.Source
}

func (f fakeNode) Position() int          { return f.pos }
func (f fakeNode) Src() *source.Source    { return f.src }

func TestErrorRendersExcerptLazily(t *testing.T) {
	src := source.NewNamed("data Hello = {\n  world: String?\n}\n", "schema.iris")
	node := fakeNode{pos: len("data Hello = {\n  "), src: src}

	err := ierror.Syntaxf("Expected Name, found %q.", "?").WithNode(node)
	rendered := err.Error()

	require.Contains(t, rendered, "Syntax Error: Expected Name")
	require.Contains(t, rendered, "schema.iris:2:3")
	require.Contains(t, rendered, "world: String?")
	require.Contains(t, rendered, "^")
}

func TestErrorMarshalJSON(t *testing.T) {
	src := source.New("x")
	node := fakeNode{pos: 0, src: src}
	err := ierror.New("boom").WithNode(node)

	b, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	require.JSONEq(t, `{"message":"boom","locations":[{"Line":1,"Column":1}]}`, string(b))
}

func TestListError(t *testing.T) {
	l := ierror.List{ierror.New("a"), ierror.New("b")}
	require.Equal(t, "a\n\nb", l.Error())
}
