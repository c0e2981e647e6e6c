// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rts

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/dhconnelly/rtreego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row returns n disjoint unit squares spaced two units apart along X.
//
// ...  [0] [1] [2] [3] ... [n-1]
func row(n int) []Rect {
	rects := make([]Rect, n)
	for i := range rects {
		rects[i] = Rect{X1: int64(2 * i), Y1: 0, X2: int64(2*i + 1), Y2: 1}
	}
	return rects
}

func randomRects(r *rand.Rand, n int, extent, maxSize int64) []Rect {
	rects := make([]Rect, n)
	for i := range rects {
		x := r.Int63n(extent) - extent/2
		y := r.Int63n(extent) - extent/2
		rects[i] = Rect{
			X1: x,
			Y1: y,
			X2: x + 1 + r.Int63n(maxSize),
			Y2: y + 1 + r.Int63n(maxSize),
		}
	}
	return rects
}

func bruteForce(rects []Rect, q Rect) []uint32 {
	r := make([]uint32, 0)
	for i := range rects {
		if rects[i].Intersects(&q) {
			r = append(r, uint32(i))
		}
	}
	return r
}

func sorted(indices []uint32) []uint32 {
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

// checkInvariants verifies that every child of every non-leaf node is
// keyed by its exact extent along its parent's split axis, and that
// every input rectangle is stored in exactly one leaf.
func checkInvariants(t *testing.T, root *Node, rects []Rect) {
	seen := make(map[uint32]int)
	var walk func(n *Node, a Axis) []Item
	walk = func(n *Node, a Axis) []Item {
		if n.IsLeaf() {
			require.NotEmpty(t, n.items, "Leaf must not be empty.")
			for _, item := range n.items {
				seen[item.Index]++
				require.Equal(t, rects[item.Index], item.Rect)
			}
			return n.items
		}
		var all []Item
		require.Greater(t, n.children.Len(), 1, "Non-leaf must have at least two children.")
		n.children.Each(func(child *Node) {
			items := walk(child, a.Transpose())
			assert.Equal(t, extent(items, a), child.bounds, "Child must be keyed by its extent along %s.", a)
			all = append(all, items...)
		})
		return all
	}

	walk(root, X)
	require.Len(t, seen, len(rects))
	for i := range rects {
		assert.Equal(t, 1, seen[uint32(i)], "Rect %d must be stored exactly once.", i)
	}
}

func TestNew(t *testing.T) {
	t.Run("Panics", func(t *testing.T) {
		testCases := []struct {
			name  string
			rects []Rect
		}{
			{"Nil", nil},
			{"Empty", make([]Rect, 0)},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				assert.PanicsWithValue(t, "rts: empty tree not allowed (num rects must be > 0)", func() {
					_ = New(testCase.rects)
				})
			})
		}
	})

	// We don't test the uint32 overflow case here because doing so
	// would require a massive memory allocation.

	t.Run("DoesNotModifyInput", func(t *testing.T) {
		rects := randomRects(rand.New(rand.NewSource(1)), 100, 100, 10)
		dup := make([]Rect, len(rects))
		copy(dup, rects)

		_ = New(rects)

		assert.Equal(t, dup, rects)
	})

	t.Run("Leaf", func(t *testing.T) {
		for n := 1; n <= MinBinSize; n++ {
			t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
				root := New(row(n))

				assert.True(t, root.IsLeaf())
				assert.Equal(t, n, root.Len())
				assert.Equal(t, Stats{Depth: 1, LeafSizes: []int{n}}, root.Stats())
			})
		}
	})

	t.Run("Row", func(t *testing.T) {
		// The sweep finds a boundary every MinBinSize+1 squares at 9,
		// 18, and 27. The last one is dropped. Each partition is a flat
		// run along Y, which cannot be split further.
		rects := row(30)

		root := New(rects)

		require.False(t, root.IsLeaf())
		assert.Equal(t, 30, root.Len())
		assert.Equal(t, Stats{Depth: 2, Internal: 1, LeafSizes: []int{9, 9, 12}}, root.Stats())
		assert.Equal(t, "Node{Bounds:[0,1),Children:3}", root.String())
		checkInvariants(t, root, rects)
	})

	t.Run("Identical", func(t *testing.T) {
		rects := make([]Rect, 1000)
		for i := range rects {
			rects[i] = Rect{X1: 5, Y1: 5, X2: 10, Y2: 10}
		}

		root := New(rects)

		assert.True(t, root.IsLeaf(), "Identical rects must fall back to a single leaf.")
		assert.Equal(t, "Node{Bounds:[5,10),Items:1000}", root.String())
		assert.Len(t, root.FindIntersections(Rect{X1: 9, Y1: 9, X2: 11, Y2: 11}), 1000)
		assert.Empty(t, root.FindIntersections(Rect{X1: 10, Y1: 0, X2: 20, Y2: 20}))
	})

	t.Run("Random", func(t *testing.T) {
		for _, n := range []int{9, 50, 500, 5000} {
			for seed := int64(0); seed < 3; seed++ {
				t.Run(fmt.Sprintf("n=%d,seed=%d", n, seed), func(t *testing.T) {
					rects := randomRects(rand.New(rand.NewSource(seed)), n, 10000, 200)

					root := New(rects)

					assert.Equal(t, n, root.Len())
					checkInvariants(t, root, rects)
				})
			}
		}
	})
}

func TestSplit(t *testing.T) {
	testCases := []struct {
		name     string
		rects    []Rect
		a        Axis
		expected []int
	}{
		{
			name:     "Row.X",
			rects:    row(30),
			a:        X,
			expected: []int{0, 9, 18, 30},
		},
		{
			name:     "Row.Y",
			rects:    row(30),
			a:        Y,
			expected: []int{0, 30},
		},
		{
			name:     "OnlyBoundaryDropped",
			rects:    row(18),
			a:        X,
			expected: []int{0, 18},
		},
		{
			name:     "LastBoundaryDropped",
			rects:    row(19),
			a:        X,
			expected: []int{0, 9, 19},
		},
		{
			name:     "NoBoundary",
			rects:    row(9),
			a:        X,
			expected: []int{0, 9},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			items := make([]Item, len(testCase.rects))
			for i := range items {
				items[i] = Item{Rect: testCase.rects[i], Index: uint32(i)}
			}

			actual := split(items, testCase.a)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestNode_FindIntersections(t *testing.T) {
	t.Run("Row", func(t *testing.T) {
		root := New(row(30))

		testCases := []struct {
			name     string
			q        Rect
			expected []uint32
		}{
			{"Exact", Rect{X1: 20, Y1: 0, X2: 21, Y2: 1}, []uint32{10}},
			{"Gap", Rect{X1: 21, Y1: 0, X2: 22, Y2: 1}, []uint32{}},
			{"SpanThree", Rect{X1: 16, Y1: 0, X2: 21, Y2: 1}, []uint32{8, 9, 10}},
			{"Above", Rect{X1: 0, Y1: 1, X2: 60, Y2: 2}, []uint32{}},
			{"Below", Rect{X1: 0, Y1: -1, X2: 60, Y2: 0}, []uint32{}},
			{"Last", Rect{X1: 58, Y1: -100, X2: 1000, Y2: 100}, []uint32{29}},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				assert.Equal(t, testCase.expected, sorted(root.FindIntersections(testCase.q)))
			})
		}
	})

	t.Run("RandomBruteForce", func(t *testing.T) {
		for _, n := range []int{1, 8, 9, 17, 100, 1000, 3000} {
			for seed := int64(0); seed < 3; seed++ {
				t.Run(fmt.Sprintf("n=%d,seed=%d", n, seed), func(t *testing.T) {
					r := rand.New(rand.NewSource(seed))
					rects := randomRects(r, n, 2000, 100)
					root := New(rects)

					for k := 0; k < 100; k++ {
						q := randomRects(r, 1, 2400, 300)[0]
						if k%4 == 0 {
							q = rects[r.Intn(n)]
						}

						expected := bruteForce(rects, q)
						actual := sorted(root.FindIntersections(q))

						assert.Equal(t, expected, actual, "query %s", q)
					}
				})
			}
		}
	})

	t.Run("RTreeOracle", func(t *testing.T) {
		r := rand.New(rand.NewSource(99))
		rects := randomRects(r, 2000, 5000, 400)
		root := New(rects)
		oracle := rtreego.NewTree(2, 25, 50)
		for i := range rects {
			oracle.Insert(&spatial{rect: rects[i], index: uint32(i)})
		}

		for k := 0; k < 200; k++ {
			q := randomRects(r, 1, 6000, 600)[0]
			bb, err := rtreego.NewRect(
				rtreego.Point{float64(q.X1), float64(q.Y1)},
				[]float64{float64(q.X2 - q.X1), float64(q.Y2 - q.Y1)},
			)
			require.NoError(t, err)

			// The oracle's notion of intersection may include touching
			// rectangles, so its candidates are filtered exactly.
			expected := make([]uint32, 0)
			for _, s := range oracle.SearchIntersect(bb) {
				c := s.(*spatial)
				if c.rect.Intersects(&q) {
					expected = append(expected, c.index)
				}
			}

			actual := root.FindIntersections(q)

			assert.Equal(t, sorted(expected), sorted(actual), "query %s", q)
		}
	})

	t.Run("Concurrent", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		rects := randomRects(r, 2000, 3000, 150)
		root := New(rects)
		queries := randomRects(r, 64, 3000, 300)

		var wg sync.WaitGroup
		results := make([][]uint32, len(queries))
		for i := range queries {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = sorted(root.FindIntersections(queries[i]))
			}(i)
		}
		wg.Wait()

		for i := range queries {
			assert.Equal(t, bruteForce(rects, queries[i]), results[i])
		}
	})
}

func TestNode_Search(t *testing.T) {
	rects := randomRects(rand.New(rand.NewSource(3)), 300, 500, 50)
	root := New(rects)
	q := Rect{X1: -100, Y1: -100, X2: 100, Y2: 100}
	visited := make(map[uint32]int)

	root.Search(q, func(index uint32) {
		visited[index]++
	})

	expected := bruteForce(rects, q)
	require.Len(t, visited, len(expected))
	for _, i := range expected {
		assert.Equal(t, 1, visited[i], "Index %d must be visited exactly once.", i)
	}
}

func TestNode_Stats(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	rects := randomRects(r, 10000, 100000, 100)

	s := New(rects).Stats()

	var total int
	for _, size := range s.LeafSizes {
		total += size
	}
	assert.Equal(t, len(rects), total)
	assert.Greater(t, s.Depth, 1)
	assert.Greater(t, s.Leaves(), s.Internal)
	assert.Equal(t, fmt.Sprintf("Stats{Depth:%d,Internal:%d,Leaves:%d}", s.Depth, s.Internal, s.Leaves()), s.String())
}

// spatial adapts a Rect to the rtreego.Spatial interface.
type spatial struct {
	rect  Rect
	index uint32
}

func (s *spatial) Bounds() rtreego.Rect {
	bb, err := rtreego.NewRect(
		rtreego.Point{float64(s.rect.X1), float64(s.rect.Y1)},
		[]float64{float64(s.rect.X2 - s.rect.X1), float64(s.rect.Y2 - s.rect.Y1)},
	)
	if err != nil {
		panic(err)
	}
	return bb
}
