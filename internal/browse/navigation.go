package browse

// Navigation transitions. Each returns a new Query; the receiver is left untouched.

func Home() Query {
	return Query{View: ViewHome, Clothes: ClothesAll}
}

// SelectCategory opens the category view and drops any search text.
func (q Query) SelectCategory(category string) Query {
	return Query{View: ViewCategory, Category: category, Clothes: ClothesAll}
}

// SearchFor opens the search view and drops any selected category.
func (q Query) SearchFor(text string) Query {
	return Query{View: ViewSearch, Search: text, Clothes: ClothesAll}
}

// GoTo switches view. Going home resets every filter dimension.
func (q Query) GoTo(v View) Query {
	if v == ViewHome {
		return Home()
	}
	q.View = v
	if v == ViewClothes {
		q.Category = ""
	}
	if q.Clothes == "" {
		q.Clothes = ClothesAll
	}
	return q
}

func (q Query) WithClothes(f ClothesFilter) Query {
	q.Clothes = f
	return q
}
