package models

// Neighborhood maps a delivery area to its fee. Orders embed the name and
// fee by value, so removing or editing a neighborhood never rewrites
// already-placed orders.
type Neighborhood struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}
