package model

// Favorite is a saved (user, city) pairing.
// The store enforces uniqueness on (UserID, City).
type Favorite struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	City   string `json:"city"`
}
