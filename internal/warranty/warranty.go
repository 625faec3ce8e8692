// Package warranty computes warranty expiry dates.
package warranty

import (
	"laptop-inventory-api/internal/model"
)

// ExpiryDate advances the purchase date by the warranty duration in whole
// calendar months. Day-of-month is preserved and dates are normalized the way
// time.AddDate normalizes them: a day past the end of the target month rolls
// into the next month, so 2024-01-31 plus one month is 2024-03-02. This
// matches the rollover behavior of the system the existing data was written
// by, and is a pure function of its inputs.
func ExpiryDate(purchaseDate model.Date, months int) model.Date {
	return model.NewDate(purchaseDate.AddDate(0, months, 0))
}
