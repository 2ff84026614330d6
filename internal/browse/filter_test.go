package browse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
)

func product(id int, title, description, category string) catalog.Product {
	return catalog.Product{
		ID:          id,
		Title:       title,
		Description: description,
		Category:    category,
		Price:       decimal.NewFromInt(int64(id)),
	}
}

func testCatalog() []catalog.Product {
	return []catalog.Product{
		product(1, "Slim Fit T-Shirt", "cotton tee", MenCategory),
		product(2, "Rain Jacket", "windbreaker", WomenCategory),
		product(3, "SSD 1TB", "fast storage", "electronics"),
		product(4, "Gold Ring", "a ring that goes with any SHIRT", "jewelery"),
		product(5, "Casual Jacket", "denim", MenCategory),
	}
}

func ids(products []catalog.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	cases := map[string]struct {
		q    Query
		want []int
	}{
		"home shows everything":            {q: Query{View: ViewHome}, want: []int{1, 2, 3, 4, 5}},
		"zero query behaves like home":     {q: Query{}, want: []int{1, 2, 3, 4, 5}},
		"clothes men":                      {q: Query{View: ViewClothes, Clothes: ClothesMen}, want: []int{1, 5}},
		"clothes women":                    {q: Query{View: ViewClothes, Clothes: ClothesWomen}, want: []int{2}},
		"clothes all":                      {q: Query{View: ViewClothes, Clothes: ClothesAll}, want: []int{1, 2, 5}},
		"clothes ignores category":         {q: Query{View: ViewClothes, Clothes: ClothesAll, Category: "electronics"}, want: []int{1, 2, 5}},
		"category exact match":             {q: Query{View: ViewCategory, Category: "electronics"}, want: []int{3}},
		"category no partial match":        {q: Query{View: ViewCategory, Category: "electro"}, want: []int{}},
		"category empty selection":         {q: Query{View: ViewCategory}, want: []int{1, 2, 3, 4, 5}},
		"search title mixed case":          {q: Query{View: ViewSearch, Search: "jacket"}, want: []int{2, 5}},
		"search description":               {q: Query{View: ViewSearch, Search: "DENIM"}, want: []int{5}},
		"search title or description":      {q: Query{View: ViewSearch, Search: "shirt"}, want: []int{1, 4}},
		"search empty query":               {q: Query{View: ViewSearch, Search: "  "}, want: []int{1, 2, 3, 4, 5}},
		"search no hits":                   {q: Query{View: ViewSearch, Search: "banana"}, want: []int{}},
		"search ignores selected category": {q: Query{View: ViewSearch, Search: "ring", Category: "electronics"}, want: []int{4}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := Filter(testCatalog(), tc.q)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestFilter_ClothesMenOnMixedCatalog(t *testing.T) {
	products := []catalog.Product{
		product(1, "Shirt", "", MenCategory),
		product(2, "Dress", "", WomenCategory),
		product(3, "Monitor", "", "electronics"),
	}

	got := Filter(products, Query{View: ViewClothes, Clothes: ClothesMen})

	require.Len(t, got, 1)
	assert.Equal(t, MenCategory, got[0].Category)
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	products := testCatalog()

	got := Filter(products, Query{View: ViewHome})
	got[0].Title = "changed"

	assert.Equal(t, "Slim Fit T-Shirt", products[0].Title)
}

func TestFilter_RecomputesFromFullCatalog(t *testing.T) {
	products := testCatalog()

	q := Home().GoTo(ViewClothes).WithClothes(ClothesWomen)
	assert.Equal(t, []int{2}, ids(Filter(products, q)))

	q = q.WithClothes(ClothesMen)
	assert.Equal(t, []int{1, 5}, ids(Filter(products, q)))
}

func TestParseView(t *testing.T) {
	v, err := ParseView(" Search ")
	require.NoError(t, err)
	assert.Equal(t, ViewSearch, v)

	v, err = ParseView("")
	require.NoError(t, err)
	assert.Equal(t, ViewHome, v)

	_, err = ParseView("checkout")
	assert.Error(t, err)
}

func TestParseClothesFilter(t *testing.T) {
	f, err := ParseClothesFilter("WOMEN")
	require.NoError(t, err)
	assert.Equal(t, ClothesWomen, f)

	f, err = ParseClothesFilter("")
	require.NoError(t, err)
	assert.Equal(t, ClothesAll, f)

	_, err = ParseClothesFilter("kids")
	assert.Error(t, err)
}
