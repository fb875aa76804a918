package sourcemap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestScenarioSingleSegment(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("AAAA", []string{"a.js"}, nil, 0, 0))

	got, err := c.Stringify()
	require.NoError(t, err)
	require.Equal(t, "AAAA", got.Mappings)
	require.Equal(t, []string{"a.js"}, got.Sources)
	require.Empty(t, got.Names)
}

func TestScenarioTwoSegmentsAlreadySorted(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("AACA,EAAA", []string{"a.js"}, nil, 0, 0))

	c.Sort()
	got, err := c.Stringify()
	require.NoError(t, err)
	require.Equal(t, "AACA,EAAA", got.Mappings)
}

func TestScenarioLineBreakPreserved(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("AAAA;AACA", []string{"a.js"}, nil, 0, 0))

	got, err := c.Stringify()
	require.NoError(t, err)
	require.Equal(t, "AAAA;AACA", got.Mappings)
}

func TestScenarioMergeWithLineOffset(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("AAAA", []string{"a.js"}, nil, 0, 0))
	require.NoError(t, c.AddVLQMappings("AAAA", []string{"b.js"}, nil, 1, 0))

	got, err := c.Stringify()
	require.NoError(t, err)
	require.Equal(t, []string{"a.js", "b.js"}, got.Sources)
	require.Equal(t, "AAAA;ACAA", got.Mappings)
}

func TestScenarioMergeWithNonZeroColumnOffsetReappliedEveryLine(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("AAAA;CAAA", []string{"a.js"}, nil, 0, 10))

	m, err := c.GetMap()
	require.NoError(t, err)
	require.Len(t, m.Mappings, 2)
	require.EqualValues(t, 10, m.Mappings[0].Generated.Column)
	require.EqualValues(t, 11, m.Mappings[1].Generated.Column)
}

func TestScenarioBufferRoundTripEmpty(t *testing.T) {
	c := New()
	buf, err := c.ToBuffer()
	require.NoError(t, err)

	c2 := New()
	require.NoError(t, c2.AddBufferMappings(buf, 0, 0))

	got, err := c2.Stringify()
	require.NoError(t, err)
	require.Equal(t, "", got.Mappings)
	require.Empty(t, got.Sources)
	require.Empty(t, got.Names)
}

func TestScenarioInvalidCharacterDecodeError(t *testing.T) {
	c := New()
	err := c.AddVLQMappings("!", nil, nil, 0, 0)
	require.Error(t, err)
}

func TestFailedMergeLeavesPoolsUntouched(t *testing.T) {
	c := New()
	err := c.AddVLQMappings("!", []string{"x.js"}, []string{"n"}, 0, 0)
	require.Error(t, err)
	require.Zero(t, c.Sources.Len())
	require.Zero(t, c.Names.Len())
}

func TestBoundaryEmptyStringYieldsNoSegments(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("", nil, nil, 0, 0))
	require.EqualValues(t, -1, c.GeneratedLines)
	require.EqualValues(t, 0, c.SegmentCount)
}

func TestBoundaryDoubleSemicolonYieldsThreeEmptyLines(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings(";;", nil, nil, 0, 0))
	require.EqualValues(t, 2, c.GeneratedLines)
	require.EqualValues(t, 0, c.SegmentCount)

	got, err := c.Stringify()
	require.NoError(t, err)
	require.Equal(t, ";;", got.Mappings)
}

func TestBoundaryGeneratedOnlySegmentHasNoSourceOrName(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("A", nil, nil, 0, 0))

	m, err := c.GetMap()
	require.NoError(t, err)
	require.Len(t, m.Mappings, 1)
	require.Nil(t, m.Mappings[0].Source)
	require.Nil(t, m.Mappings[0].Name)
	require.Nil(t, m.Mappings[0].Original)
}

func TestMergeShiftsEveryGeneratedLine(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("AAAA;AACA", []string{"a.js"}, nil, 5, 0))

	m, err := c.GetMap()
	require.NoError(t, err)
	require.Len(t, m.Mappings, 2)
	require.EqualValues(t, 5, m.Mappings[0].Generated.Line)
	require.EqualValues(t, 6, m.Mappings[1].Generated.Line)
}

func TestMergingWithPoolsFirstNewSourceIndexEqualsPreviousCount(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("AAAA", []string{"a.js"}, nil, 0, 0))
	before := c.Sources.Len()

	require.NoError(t, c.AddVLQMappings("AAAA", []string{"b.js"}, nil, 1, 0))
	require.EqualValues(t, before, c.GetSourceIndex("b.js"))
}

func TestSortIdempotent(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("EAAA,AACA", []string{"a.js"}, nil, 0, 0))

	c.Sort()
	after1, err := c.Stringify()
	require.NoError(t, err)

	c.Sort()
	after2, err := c.Stringify()
	require.NoError(t, err)

	require.Equal(t, after1, after2)
}

func TestBufferRoundTripPreservesStringify(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("AACA,EAAA;AAIA", []string{"a.js", "b.js"}, []string{"x", "y"}, 0, 0))

	buf, err := c.ToBuffer()
	require.NoError(t, err)

	c2 := New()
	require.NoError(t, c2.AddBufferMappings(buf, 0, 0))

	want, err := c.Stringify()
	require.NoError(t, err)
	got, err := c2.Stringify()
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buffer round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStubOperationsReturnUnimplemented(t *testing.T) {
	c := New()

	_, err := c.FindByGenerated(0, 0)
	require.Error(t, err)

	_, err = c.FindByOriginal("a.js", 0, 0)
	require.Error(t, err)

	err = c.AddIndexedMappings(nil)
	require.Error(t, err)
}

func TestAllSegmentsWithinBounds(t *testing.T) {
	c := New()
	require.NoError(t, c.AddVLQMappings("AAAA,EACA;AAIA", []string{"a.js"}, nil, 0, 0))

	m, err := c.GetMap()
	require.NoError(t, err)
	for _, entry := range m.Mappings {
		require.GreaterOrEqual(t, entry.Generated.Line, int32(0))
		require.LessOrEqual(t, entry.Generated.Line, c.GeneratedLines)
		require.GreaterOrEqual(t, entry.Generated.Column, int32(0))
		require.LessOrEqual(t, entry.Generated.Column, c.GeneratedColumns)
	}
}
