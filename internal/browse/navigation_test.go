package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigation(t *testing.T) {
	t.Run("select category clears search", func(t *testing.T) {
		q := Home().SearchFor("ring").SelectCategory("electronics")
		assert.Equal(t, Query{View: ViewCategory, Category: "electronics", Clothes: ClothesAll}, q)
	})

	t.Run("search clears category", func(t *testing.T) {
		q := Home().SelectCategory("jewelery").SearchFor("gold")
		assert.Equal(t, Query{View: ViewSearch, Search: "gold", Clothes: ClothesAll}, q)
	})

	t.Run("home resets everything", func(t *testing.T) {
		q := Home().GoTo(ViewClothes).WithClothes(ClothesMen).GoTo(ViewHome)
		assert.Equal(t, Home(), q)
	})

	t.Run("clothes view drops category", func(t *testing.T) {
		q := Home().SelectCategory("electronics").GoTo(ViewClothes)
		assert.Equal(t, ViewClothes, q.View)
		assert.Empty(t, q.Category)
		assert.Equal(t, ClothesAll, q.Clothes)
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		q := Home()
		_ = q.WithClothes(ClothesWomen)
		assert.Equal(t, ClothesAll, q.Clothes)
	})
}

func TestMenuCategories(t *testing.T) {
	got := MenuCategories([]string{"electronics", "jewelery", MenCategory, WomenCategory})
	assert.Equal(t, []string{"electronics", "jewelery"}, got)
}

func TestDisplayNameAndTitle(t *testing.T) {
	assert.Equal(t, "Jewelry", DisplayName("jewelery"))
	assert.Equal(t, "Men's Clothing", DisplayName(MenCategory))
	assert.Equal(t, "garden", DisplayName("garden"))

	cases := map[string]struct {
		q    Query
		want string
	}{
		"home":           {q: Home(), want: "Featured Products"},
		"clothes":        {q: Home().GoTo(ViewClothes), want: "Clothes"},
		"search results": {q: Home().SearchFor("shirt"), want: `Search Results for "shirt"`},
		"search prompt":  {q: Home().GoTo(ViewSearch), want: "Search Products"},
		"category":       {q: Home().SelectCategory("electronics"), want: "Electronics"},
		"empty category": {q: Home().GoTo(ViewCategory), want: "Featured Products"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Title(tc.q))
		})
	}
}
