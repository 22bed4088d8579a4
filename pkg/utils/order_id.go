package utils

import (
	"fmt"
	"math/rand"
)

// GenerateOrderID returns a fresh order reference of the form "T" followed
// by a random integer below 10^15. The order id is the join key shared with
// the payment gateway and the hosted table, so it is generated exactly once
// per checkout, here and nowhere else.
func GenerateOrderID() string {
	return fmt.Sprintf("T%d", rand.Int63n(1_000_000_000_000_000))
}
