package cart

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
)

func testProduct(id int, price string) catalog.Product {
	return catalog.Product{
		ID:       id,
		Title:    "product",
		Price:    decimal.RequireFromString(price),
		Category: "electronics",
	}
}

func empty() State { return State{Lines: []Line{}} }

func TestReduce_AddTwiceMerges(t *testing.T) {
	a := testProduct(1, "10.00")

	s := Reduce(Reduce(empty(), Add{Product: a}), Add{Product: a})

	require.Len(t, s.Lines, 1)
	assert.Equal(t, 2, s.Lines[0].Quantity)
	assert.True(t, decimal.RequireFromString("20.00").Equal(s.Lines[0].Total()))
}

func TestReduce_AddKeepsInsertionOrder(t *testing.T) {
	s := empty()
	for _, id := range []int{3, 1, 2, 1} {
		s = Reduce(s, Add{Product: testProduct(id, "1")})
	}

	require.Len(t, s.Lines, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{s.Lines[0].ID, s.Lines[1].ID, s.Lines[2].ID})
	assert.Equal(t, 2, s.QuantityOf(1))
	assert.Equal(t, 4, s.Count())
}

func TestReduce_AddMany(t *testing.T) {
	a := testProduct(1, "2.50")

	s := Reduce(empty(), AddMany{Product: a, Quantity: 3})
	s = Reduce(s, AddMany{Product: a, Quantity: 2})

	require.Len(t, s.Lines, 1)
	assert.Equal(t, 5, s.Lines[0].Quantity)
}

func TestReduce_AddManyNonPositiveIsNoop(t *testing.T) {
	a := testProduct(1, "2.50")
	start := Reduce(empty(), Add{Product: a})

	for _, q := range []int{0, -1, -50} {
		s := Reduce(start, AddMany{Product: a, Quantity: q})
		assert.Equal(t, start, s)
		s = Reduce(empty(), AddMany{Product: a, Quantity: q})
		assert.Empty(t, s.Lines)
	}
}

func TestReduce_RemoveAndSetQuantity(t *testing.T) {
	s := Reduce(empty(), Add{Product: testProduct(1, "1")})
	s = Reduce(s, Add{Product: testProduct(2, "1")})

	t.Run("remove unknown is noop", func(t *testing.T) {
		assert.Equal(t, s, Reduce(s, Remove{ProductID: 99}))
	})

	t.Run("remove drops line", func(t *testing.T) {
		got := Reduce(s, Remove{ProductID: 1})
		require.Len(t, got.Lines, 1)
		assert.Equal(t, 2, got.Lines[0].ID)
	})

	t.Run("set quantity", func(t *testing.T) {
		got := Reduce(s, SetQuantity{ProductID: 2, Quantity: 7})
		assert.Equal(t, 7, got.QuantityOf(2))
		assert.Equal(t, 1, got.QuantityOf(1))
	})

	t.Run("set quantity zero removes", func(t *testing.T) {
		got := Reduce(s, SetQuantity{ProductID: 2, Quantity: 0})
		require.Len(t, got.Lines, 1)
		assert.Equal(t, 0, got.QuantityOf(2))
	})

	t.Run("set quantity negative removes", func(t *testing.T) {
		got := Reduce(s, SetQuantity{ProductID: 1, Quantity: -3})
		require.Len(t, got.Lines, 1)
		assert.Equal(t, 2, got.Lines[0].ID)
	})

	t.Run("set quantity unknown is noop", func(t *testing.T) {
		assert.Equal(t, s, Reduce(s, SetQuantity{ProductID: 42, Quantity: 3}))
	})
}

func TestReduce_ClearAndToggle(t *testing.T) {
	s := Reduce(empty(), Add{Product: testProduct(1, "1")})
	s = Reduce(s, TogglePanel{})
	require.True(t, s.Open)

	cleared := Reduce(s, Clear{})
	assert.Empty(t, cleared.Lines)
	assert.NotNil(t, cleared.Lines)
	assert.True(t, cleared.Open)

	toggled := Reduce(cleared, TogglePanel{})
	assert.False(t, toggled.Open)
	assert.Empty(t, toggled.Lines)
}

func TestReduce_HydrateNormalizes(t *testing.T) {
	s := Reduce(State{Open: true}, Hydrate{Lines: []Line{
		{Product: testProduct(1, "1"), Quantity: 2},
		{Product: testProduct(2, "1"), Quantity: 0},
		{Product: testProduct(1, "1"), Quantity: 3},
		{Product: testProduct(3, "1"), Quantity: -1},
	}})

	assert.True(t, s.Open)
	require.Len(t, s.Lines, 1)
	assert.Equal(t, 1, s.Lines[0].ID)
	assert.Equal(t, 5, s.Lines[0].Quantity)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := Reduce(empty(), Add{Product: testProduct(1, "1")})
	before := s.Lines[0].Quantity

	_ = Reduce(s, Add{Product: testProduct(1, "1")})
	_ = Reduce(s, SetQuantity{ProductID: 1, Quantity: 9})
	_ = Reduce(s, Remove{ProductID: 1})

	require.Len(t, s.Lines, 1)
	assert.Equal(t, before, s.Lines[0].Quantity)
}

func TestReduce_RandomSequencesKeepLinesValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))

	for run := 0; run < 200; run++ {
		s := empty()
		for step := 0; step < 60; step++ {
			id := rng.IntN(6) + 1
			var cmd Command
			switch rng.IntN(3) {
			case 0:
				cmd = Add{Product: testProduct(id, "3.10")}
			case 1:
				cmd = Remove{ProductID: id}
			default:
				cmd = SetQuantity{ProductID: id, Quantity: rng.IntN(7) - 3}
			}
			s = Reduce(s, cmd)

			seen := map[int]bool{}
			for _, l := range s.Lines {
				require.Greaterf(t, l.Quantity, 0, "run %d step %d: %T left quantity %d", run, step, cmd, l.Quantity)
				require.Falsef(t, seen[l.ID], "run %d step %d: duplicate line %d", run, step, l.ID)
				seen[l.ID] = true
			}
		}
	}
}
