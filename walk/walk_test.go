package walk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvwalk/lattice"
	"github.com/katalvlaran/lvwalk/random"
	"github.com/katalvlaran/lvwalk/walk"
)

// GenerateSuite exercises Generate on small lattices with fixed seeds.
type GenerateSuite struct {
	suite.Suite
}

// requireDeadEnd asserts every on-lattice neighbor of the last point was visited.
func requireDeadEnd(t *testing.T, w walk.Walk, width, height int) {
	t.Helper()
	lat, err := lattice.New(width, height)
	require.NoError(t, err)
	end, ok := w.End()
	require.True(t, ok)

	visited := lattice.NewVisitedSet(lat)
	for _, p := range w {
		visited.Visit(p)
	}
	for _, n := range lat.Neighbors(end, nil) {
		require.True(t, visited.Visited(n), "walk stopped at %v with unvisited neighbor %v", end, n)
	}
}

// TestProperties checks the walk invariants across many sizes and seeds.
func (s *GenerateSuite) TestProperties() {
	dims := [][2]int{{1, 1}, {2, 1}, {1, 7}, {3, 3}, {8, 5}, {20, 20}, {64, 3}}
	for _, d := range dims {
		for seed := int64(1); seed <= 25; seed++ {
			w, err := walk.Generate(d[0], d[1], walk.WithSeed(seed))
			require.NoError(s.T(), err)
			require.NotEmpty(s.T(), w)
			require.LessOrEqual(s.T(), w.Len(), d[0]*d[1])
			require.NoError(s.T(), walk.Validate(w, d[0], d[1]), "dims %v seed %d", d, seed)
			requireDeadEnd(s.T(), w, d[0], d[1])
		}
	}
}

// TestSingleCell pins the 1×1 scenario: the walk is exactly [(0,0)].
func (s *GenerateSuite) TestSingleCell() {
	w, err := walk.Generate(1, 1, walk.WithSeed(3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), walk.Walk{{X: 0, Y: 0}}, w)
}

// TestTwoByOne pins the 2×1 scenario: length 2, both orders reachable.
func (s *GenerateSuite) TestTwoByOne() {
	left := walk.Walk{{X: 0, Y: 0}, {X: 1, Y: 0}}
	right := walk.Walk{{X: 1, Y: 0}, {X: 0, Y: 0}}
	seen := map[string]bool{}
	for seed := int64(1); seed <= 200; seed++ {
		w, err := walk.Generate(2, 1, walk.WithSeed(seed))
		require.NoError(s.T(), err)
		require.Len(s.T(), w, 2)
		require.True(s.T(), equalWalk(w, left) || equalWalk(w, right), "unexpected walk %v", w)
		seen[fmt.Sprint(w)] = true
	}
	require.Len(s.T(), seen, 2, "both start cells must occur")
}

// TestCorridor checks a 1-wide corridor started at one end is walked in full.
func (s *GenerateSuite) TestCorridor() {
	w, err := walk.Generate(5, 1, walk.WithSeed(9), walk.WithStart(lattice.Point{X: 0, Y: 0}))
	require.NoError(s.T(), err)
	want := walk.Walk{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}
	require.Equal(s.T(), want, w)

	// From the middle the walk runs to one end and stops there.
	w, err = walk.Generate(5, 1, walk.WithSeed(9), walk.WithStart(lattice.Point{X: 2, Y: 0}))
	require.NoError(s.T(), err)
	require.Len(s.T(), w, 3)
	end, _ := w.End()
	require.Contains(s.T(), []int{0, 4}, end.X)
}

// TestTwoByTwo checks every walk on a 2×2 lattice covers all four cells.
func (s *GenerateSuite) TestTwoByTwo() {
	for seed := int64(1); seed <= 50; seed++ {
		w, err := walk.Generate(2, 2, walk.WithSeed(seed))
		require.NoError(s.T(), err)
		require.Len(s.T(), w, 4)
		require.Equal(s.T(), 1.0, w.Coverage(2, 2))
	}
}

// TestSeedDeterminism verifies equal seeds and equal sources give equal walks.
func (s *GenerateSuite) TestSeedDeterminism() {
	a, err := walk.Generate(40, 30, walk.WithSeed(1234))
	require.NoError(s.T(), err)
	b, err := walk.Generate(40, 30, walk.WithSeed(1234))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)

	c, err := walk.Generate(40, 30, walk.WithSource(random.New(1234)))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, c)
}

// TestWithStart verifies the start point is honored and bounds-checked.
func (s *GenerateSuite) TestWithStart() {
	start := lattice.Point{X: 4, Y: 2}
	w, err := walk.Generate(6, 6, walk.WithSeed(5), walk.WithStart(start))
	require.NoError(s.T(), err)
	got, ok := w.Start()
	require.True(s.T(), ok)
	require.Equal(s.T(), start, got)

	_, err = walk.Generate(6, 6, walk.WithStart(lattice.Point{X: 6, Y: 0}))
	require.True(s.T(), errors.Is(err, walk.ErrStartOutOfBounds))
}

// TestOnStep verifies the hook sees every point, in order, with its step index.
func (s *GenerateSuite) TestOnStep() {
	var steps []int
	var points walk.Walk
	w, err := walk.Generate(10, 10, walk.WithSeed(77), walk.WithOnStep(func(step int, p lattice.Point) {
		steps = append(steps, step)
		points = append(points, p)
	}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), w, points)
	for i, st := range steps {
		require.Equal(s.T(), i, st)
	}
}

// TestErrors covers invalid dimensions and option violations.
func (s *GenerateSuite) TestErrors() {
	cases := []struct {
		name string
		w, h int
		opts []walk.Option
		err  error
	}{
		{"ZeroWidth", 0, 5, nil, walk.ErrInvalidDimensions},
		{"NegativeHeight", 5, -1, nil, walk.ErrInvalidDimensions},
		{"NilSource", 5, 5, []walk.Option{walk.WithSource(nil)}, walk.ErrOptionViolation},
		{"NilHook", 5, 5, []walk.Option{walk.WithOnStep(nil)}, walk.ErrOptionViolation},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w, err := walk.Generate(tc.w, tc.h, tc.opts...)
			require.Nil(s.T(), w)
			require.True(s.T(), errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

// TestEntropyDefault checks the default (unseeded) path still yields a valid walk.
func (s *GenerateSuite) TestEntropyDefault() {
	w, err := walk.Generate(30, 30)
	require.NoError(s.T(), err)
	require.NoError(s.T(), walk.Validate(w, 30, 30))
}

func TestGenerateSuite(t *testing.T) {
	suite.Run(t, new(GenerateSuite))
}

func equalWalk(a, b walk.Walk) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
