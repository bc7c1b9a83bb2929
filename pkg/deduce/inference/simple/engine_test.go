package simple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/deduce/pkg/deduce/inference"
	"github.com/cognicore/deduce/pkg/deduce/internalerr"
)

func newEngine(t *testing.T, nouns ...string) *Engine {
	t.Helper()
	e := New()
	for _, n := range nouns {
		require.NoError(t, e.AddNoun(n))
	}
	return e
}

// zoo seeds the engine with the classic dogs/cats/octopuses knowledge base
func zoo(t *testing.T) *Engine {
	t.Helper()
	e := newEngine(t, "dogs", "cats", "mammals", "animals", "octopuses")

	require.NoError(t, e.TeachAllAre("dogs", "mammals"))
	require.NoError(t, e.TeachAllAre("cats", "mammals"))
	require.NoError(t, e.TeachAllAre("mammals", "animals"))
	require.NoError(t, e.TeachAllAre("octopuses", "animals"))
	require.NoError(t, e.TeachNoAre("cats", "dogs"))
	require.NoError(t, e.TeachNoAre("octopuses", "mammals"))
	return e
}

func TestAddNoun(t *testing.T) {
	e := newEngine(t, "dogs")
	g := e.Graph()

	assert.True(t, g.HasVertex("dogs"))
	assert.True(t, g.HasVertex("no_dogs"))
	assert.Equal(t, 2, g.Size())

	for _, tc := range []struct {
		from, to string
		want     int
	}{
		{"dogs", "dogs", 1},
		{"no_dogs", "no_dogs", 1},
		{"dogs", "no_dogs", 0},
		{"no_dogs", "dogs", 0},
	} {
		w, err := g.Weight(tc.from, tc.to)
		require.NoError(t, err, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.want, w, "%s -> %s", tc.from, tc.to)
	}
}

func TestAddNoun_Idempotent(t *testing.T) {
	e := newEngine(t, "dogs")
	g := e.Graph()

	before := g.Neighbors("dogs")
	beforeNot := g.Neighbors("no_dogs")

	require.NoError(t, e.AddNoun("dogs"))
	require.NoError(t, e.AddNoun("Dogs"))

	assert.Equal(t, before, g.Neighbors("dogs"))
	assert.Equal(t, beforeNot, g.Neighbors("no_dogs"))
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, []string{"dogs"}, e.Nouns())
}

func TestAddNoun_Normalizes(t *testing.T) {
	e := newEngine(t, "Hairy  Animals")

	assert.True(t, e.HasNoun("hairy_animals"))
	assert.True(t, e.HasNoun("hairy-animals"))
	assert.True(t, e.HasNoun("hairy animals"))
	assert.True(t, e.Graph().HasVertex("no_hairy_animals"))
}

func TestAddNoun_Blank(t *testing.T) {
	e := New()
	for _, in := range []string{"", "   ", "-"} {
		err := e.AddNoun(in)
		assert.ErrorIs(t, err, internalerr.ErrInvalidInput, "AddNoun(%q)", in)
	}
	assert.Equal(t, 0, e.Graph().Size())
}

func TestHasNoun(t *testing.T) {
	e := New()
	assert.False(t, e.HasNoun("dogs"))
	assert.False(t, e.HasNoun("mammals"))

	require.NoError(t, e.AddNoun("dogs"))
	require.NoError(t, e.AddNoun("mammals"))
	assert.True(t, e.HasNoun("dogs"))
	assert.True(t, e.HasNoun("mammals"))
}

func TestHasNoun_PartialIsAbsent(t *testing.T) {
	e := New()
	e.Graph().AddVertex("dogs")

	assert.False(t, e.HasNoun("dogs"), "a noun without its negation is not known")
}

func TestSelfRelationship(t *testing.T) {
	e := newEngine(t, "dogs", "mammals")

	for _, n := range []string{"dogs", "mammals", "no_dogs", "no_mammals"} {
		assert.True(t, e.HasDirectRelationship(n, n), n)
		w, err := e.GetRelationship(n, n)
		require.NoError(t, err)
		assert.Equal(t, inference.Always, w, n)
	}

	assert.False(t, e.HasDirectRelationship("dogs", "mammals"))
	assert.False(t, e.HasDirectRelationship("mammals", "dogs"))
}

func TestGetRelationship_NoSuchEdge(t *testing.T) {
	e := newEngine(t, "dogs", "mammals")

	_, err := e.GetRelationship("dogs", "mammals")
	assert.ErrorIs(t, err, internalerr.ErrNoSuchEdge)
	assert.False(t, e.AssertStatement("dogs", "mammals", inference.Sometimes))
}

func TestTeachAllAre_SixEdges(t *testing.T) {
	e := newEngine(t, "dogs", "mammals")

	assert.False(t, e.HasDirectRelationship("dogs", "mammals"))
	assert.False(t, e.HasDirectRelationship("no_mammals", "no_dogs"))

	require.NoError(t, e.TeachAllAre("dogs", "mammals"))

	before := e.Graph().EdgeCount()
	assertEdges(t, e, "dogs", "mammals", [6]inference.Truth{1, 1, 0, 0, 0, 0})

	require.NoError(t, e.TeachAllAre("dogs", "mammals"))
	assert.Equal(t, before, e.Graph().EdgeCount(), "re-teaching must not add edges")
}

func TestTeachNoAre_SixEdges(t *testing.T) {
	e := newEngine(t, "cats", "dogs")
	require.NoError(t, e.TeachNoAre("cats", "dogs"))

	assertEdges(t, e, "cats", "dogs", [6]inference.Truth{0, 0, 0, 0, 1, 1})
}

func TestTeachSomeAre_SixEdges(t *testing.T) {
	e := newEngine(t, "animals", "brown things")
	require.NoError(t, e.TeachSomeAre("animals", "brown things"))

	assertEdges(t, e, "animals", "brown_things", [6]inference.Truth{0, 0, 0, 0, 0, 0})
}

func TestTeach_Overwrites(t *testing.T) {
	e := newEngine(t, "dogs", "mammals")
	require.NoError(t, e.TeachAllAre("dogs", "mammals"))
	require.NoError(t, e.TeachNoAre("dogs", "mammals"))

	assertEdges(t, e, "dogs", "mammals", [6]inference.Truth{0, 0, 0, 0, 1, 1})
	assert.False(t, e.QueryAreAll("dogs", "mammals"))
	assert.True(t, e.QueryAreNo("dogs", "mammals"))
}

func TestTeach_UnknownNoun(t *testing.T) {
	e := newEngine(t, "dogs")
	edges := e.Graph().EdgeCount()

	err := e.TeachAllAre("dogs", "mammals")
	require.ErrorIs(t, err, internalerr.ErrUnknownVertex)
	assert.Contains(t, err.Error(), "mammals")

	err = e.TeachNoAre("mammals", "dogs")
	require.ErrorIs(t, err, internalerr.ErrUnknownVertex)

	assert.Equal(t, edges, e.Graph().EdgeCount(), "a failed teach must write nothing")
}

func TestTeach_UnknownKind(t *testing.T) {
	e := newEngine(t, "dogs", "mammals")
	err := e.Teach(inference.Statement{Subject: "dogs", Predicate: "mammals"})
	assert.ErrorIs(t, err, internalerr.ErrInvalidInput)
}

func TestQueryAreAll_Transitive(t *testing.T) {
	e := newEngine(t, "dogs", "mammals", "animals")
	require.NoError(t, e.TeachAllAre("dogs", "mammals"))
	require.NoError(t, e.TeachAllAre("mammals", "animals"))

	assert.True(t, e.QueryAreAll("dogs", "animals"))
	assert.True(t, e.QueryAreAll("dogs", "mammals"))
	assert.False(t, e.QueryAreAll("animals", "dogs"), "no reverse edge")

	// contrapositive chain
	assert.True(t, e.QueryAreAll("no animals", "no dogs"))
}

func TestQuery_SelfIsTrivial(t *testing.T) {
	e := New()
	assert.True(t, e.QueryAreAll("dogs", "dogs"))
	assert.True(t, e.QueryEngine("dogs", "dogs", inference.Always, true))
	assert.False(t, e.QueryAreAll("dogs", "cats"))
}

func TestQueryAreNo_ExclusionIsNotImplication(t *testing.T) {
	e := newEngine(t, "cats", "dogs")
	require.NoError(t, e.TeachNoAre("cats", "dogs"))

	assert.False(t, e.QueryAreAll("cats", "dogs"))
	assert.False(t, e.QueryAreAll("dogs", "cats"))

	assert.True(t, e.QueryAreNo("cats", "dogs"))
	assert.True(t, e.QueryAreNo("dogs", "cats"), "exclusion is symmetric")
	assert.True(t, e.QueryAreAll("cats", "no dogs"))
}

func TestQueryAreSome_IgnoresWeights(t *testing.T) {
	e := newEngine(t, "animals", "brown things")
	require.NoError(t, e.TeachSomeAre("animals", "brown things"))

	assert.True(t, e.QueryAreSome("animals", "brown things"))
	assert.False(t, e.QueryAreAll("animals", "brown things"))
	assert.False(t, e.QueryAreNo("animals", "brown things"))
}

func TestQueryEngine_ProvableFollowsRequiredWeightOnly(t *testing.T) {
	e := newEngine(t, "a", "b", "c")
	require.NoError(t, e.TeachSomeAre("a", "b"))
	require.NoError(t, e.TeachSomeAre("b", "c"))

	assert.True(t, e.QueryEngine("a", "c", inference.Sometimes, true))
	assert.False(t, e.QueryEngine("a", "c", inference.Always, true))
	assert.True(t, e.QueryEngine("a", "c", inference.Always, false))
}

func TestZooScenario(t *testing.T) {
	e := zoo(t)

	assert.True(t, e.QueryAreAll("dogs", "animals"))
	assert.True(t, e.QueryAreAll("cats", "animals"))
	assert.False(t, e.QueryAreAll("octopuses", "mammals"))
	assert.False(t, e.QueryAreAll("dogs", "cats"))
	assert.False(t, e.QueryAreAll("animals", "mammals"))

	assert.True(t, e.QueryAreNo("octopuses", "mammals"))
	assert.True(t, e.QueryAreNo("cats", "dogs"))
	assert.True(t, e.QueryAreNo("dogs", "octopuses"), "dogs are mammals and no mammals are octopuses")
	assert.False(t, e.QueryAreNo("dogs", "animals"))
}

func TestAsk(t *testing.T) {
	e := zoo(t)

	tests := []struct {
		s    inference.Statement
		want bool
	}{
		{inference.Statement{Kind: inference.KindAll, Subject: "dogs", Predicate: "animals"}, true},
		{inference.Statement{Kind: inference.KindAll, Subject: "animals", Predicate: "dogs"}, false},
		{inference.Statement{Kind: inference.KindNo, Subject: "octopuses", Predicate: "mammals"}, true},
		{inference.Statement{Kind: inference.KindSome, Subject: "dogs", Predicate: "animals"}, true},
		{inference.Statement{Subject: "dogs", Predicate: "animals"}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Ask(tt.s), tt.s.Question())
	}
}

func TestNouns(t *testing.T) {
	e := zoo(t)
	assert.Equal(t, []string{"dogs", "cats", "mammals", "animals", "octopuses"}, e.Nouns())

	nouns := e.Nouns()
	nouns[0] = "wolves"
	assert.Equal(t, "dogs", e.Nouns()[0], "Nouns must return a copy")
}

func assertEdges(t *testing.T, e *Engine, a, b string, want [6]inference.Truth) {
	t.Helper()
	notA, notB := e.Negate(a), e.Negate(b)
	pairs := [6][2]string{{a, b}, {notB, notA}, {notA, b}, {notB, a}, {a, notB}, {b, notA}}

	for i, p := range pairs {
		w, err := e.GetRelationship(p[0], p[1])
		require.NoError(t, err, "edge %d: %s -> %s", i+1, p[0], p[1])
		assert.Equal(t, want[i], w, "edge %d: %s -> %s", i+1, p[0], p[1])
		assert.True(t, e.AssertStatement(p[0], p[1], want[i]))
	}
}
