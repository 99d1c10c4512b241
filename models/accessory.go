package models

import "strings"

// Accessory is an optional add-on offered with a trailer. Identity is the
// slug ID assigned at creation; Name is display-only.
type Accessory struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price,omitempty" json:"price,omitempty"`
	Selected bool    `bson:"selected" json:"selected"`
}

// AccessorySlug derives a stable slug ID from a display name.
func AccessorySlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}

// NewAccessory creates an accessory with its slug ID fixed at creation time.
func NewAccessory(name string, price float64) Accessory {
	return Accessory{
		ID:    AccessorySlug(name),
		Name:  name,
		Price: price,
	}
}
