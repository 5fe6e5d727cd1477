package schemadiff_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iris-graphql/iris/internal/parser"
	"github.com/iris-graphql/iris/internal/schema"
	"github.com/iris-graphql/iris/internal/schemadiff"
	"github.com/iris-graphql/iris/internal/source"
	"github.com/iris-graphql/iris/internal/types"
)

func buildSchema(t *testing.T, body string) *types.Schema {
	t.Helper()
	doc, err := parser.ParseDocument(source.New(body), parser.Options{})
	require.NoError(t, err)
	s, err := schema.Build(doc)
	require.NoError(t, err)
	return s
}

func TestCompareDetectsRemovedTypeAsBreaking(t *testing.T) {
	base := buildSchema(t, `
data Widget { id: String }
resolver Query { w: Widget }
`)
	head := buildSchema(t, `
resolver Query { ok: Boolean }
`)

	result := schemadiff.NewDiffer(base, head).Compare()
	require.True(t, result.HasBreakingChanges())

	found := false
	for _, c := range result.Changes {
		if c.Type == schemadiff.ChangeTypeRemoved && c.Path == "Widget" {
			found = true
		}
	}
	require.True(t, found)
}

func TestCompareDetectsAddedTypeAsNonBreaking(t *testing.T) {
	base := buildSchema(t, `resolver Query { ok: Boolean }`)
	head := buildSchema(t, `
data Widget { id: String }
resolver Query { ok: Boolean w: Widget }
`)

	result := schemadiff.NewDiffer(base, head).Compare()
	require.False(t, result.HasBreakingChanges())
	require.True(t, len(result.GetChangesBySeverity(schemadiff.SeverityNonBreaking)) > 0)
}

func TestCompareDetectsRemovedFieldAsBreaking(t *testing.T) {
	base := buildSchema(t, `
resolver Query { a: String b: String }
`)
	head := buildSchema(t, `
resolver Query { a: String }
`)

	result := schemadiff.NewDiffer(base, head).Compare()
	require.True(t, result.HasBreakingChanges())

	found := false
	for _, c := range result.Changes {
		if c.Type == schemadiff.ChangeTypeFieldRemoved && c.Path == "Query.Query.b" {
			found = true
		}
	}
	require.True(t, found)
}

func TestCompareDetectsFieldMadeRequiredAsBreaking(t *testing.T) {
	base := buildSchema(t, `resolver Query { name: String? }`)
	head := buildSchema(t, `resolver Query { name: String }`)

	result := schemadiff.NewDiffer(base, head).Compare()
	require.True(t, result.HasBreakingChanges())

	found := false
	for _, c := range result.Changes {
		if c.Type == schemadiff.ChangeTypeFieldMadeRequired {
			found = true
		}
	}
	require.True(t, found)
}

func TestCompareDetectsFieldMadeOptionalAsDangerous(t *testing.T) {
	base := buildSchema(t, `resolver Query { name: String }`)
	head := buildSchema(t, `resolver Query { name: String? }`)

	result := schemadiff.NewDiffer(base, head).Compare()
	require.True(t, result.HasDangerousChanges())
	require.False(t, result.HasBreakingChanges())
}

func TestCompareDetectsFieldDeprecation(t *testing.T) {
	base := buildSchema(t, `resolver Query { name: String }`)
	head := buildSchema(t, `resolver Query { name: String @deprecated(reason: "use id") }`)

	result := schemadiff.NewDiffer(base, head).Compare()
	require.False(t, result.HasBreakingChanges())

	found := false
	for _, c := range result.Changes {
		if c.Type == schemadiff.ChangeTypeFieldDeprecated {
			found = true
			require.Equal(t, "use id", c.NewValue)
		}
	}
	require.True(t, found)
}

func TestNoChangesYieldsPatchRecommendation(t *testing.T) {
	body := `resolver Query { ok: Boolean }`
	base := buildSchema(t, body)
	head := buildSchema(t, body)

	result := schemadiff.NewDiffer(base, head).Compare()
	require.Empty(t, result.Changes)
	require.Equal(t, "patch", result.RecommendedSemverBump())
}

func TestReporterWritesSummaryAndRecommendation(t *testing.T) {
	base := buildSchema(t, `resolver Query { a: String b: String }`)
	head := buildSchema(t, `resolver Query { a: String }`)

	result := schemadiff.NewDiffer(base, head).Compare()

	var buf bytes.Buffer
	require.NoError(t, schemadiff.NewReporter(result, &buf).Report())

	out := buf.String()
	require.Contains(t, out, "Summary:")
	require.Contains(t, out, "Recommendation: MAJOR version bump")
}
