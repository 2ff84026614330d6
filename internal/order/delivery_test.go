package order

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDelivery(t *testing.T) {
	// a Sunday
	from := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	allowed := map[string]bool{
		"Friday, October 23, 2026":   true,
		"Saturday, October 24, 2026": true,
		"Sunday, October 25, 2026":   true,
	}

	seen := map[string]bool{}
	for seed := uint64(0); seed < 200; seed++ {
		got := EstimateDelivery(from, rand.New(rand.NewPCG(seed, seed)))
		assert.Truef(t, allowed[got], "unexpected estimate %q", got)
		seen[got] = true
	}

	assert.Len(t, seen, 3, "every offset from 5 to 7 days should occur")
}

func TestEstimateDelivery_CrossesMonth(t *testing.T) {
	from := time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC)
	got := EstimateDelivery(from, rand.New(rand.NewPCG(1, 1)))

	assert.Contains(t, []string{
		"Monday, January 4, 2027",
		"Tuesday, January 5, 2027",
		"Wednesday, January 6, 2027",
	}, got)
}
