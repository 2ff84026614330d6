package order

import (
	"math/rand/v2"
	"time"
)

const (
	minDeliveryDays = 5
	maxDeliveryDays = 7

	deliveryLayout = "Monday, January 2, 2006"
)

// EstimateDelivery picks a date 5 to 7 days after from, inclusive, in long form.
func EstimateDelivery(from time.Time, rng *rand.Rand) string {
	days := minDeliveryDays + rng.IntN(maxDeliveryDays-minDeliveryDays+1)
	return from.AddDate(0, 0, days).Format(deliveryLayout)
}
