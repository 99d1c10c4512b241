package models

import "time"

// Trailer is a published marketplace listing.
type Trailer struct {
	ID          string   `bson:"id" json:"id"`
	OwnerID     string   `bson:"ownerId" json:"ownerId"`
	Type        string   `bson:"type" json:"type"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Address     string   `bson:"address" json:"address"`
	City        string   `bson:"city" json:"city"`
	PostalCode  string   `bson:"postalCode" json:"postalCode"`
	Country     string   `bson:"country" json:"country"`
	Latitude    float64  `bson:"latitude" json:"latitude"`
	Longitude   float64  `bson:"longitude" json:"longitude"`
	LocationGeo GeoPoint `bson:"locationGeo" json:"locationGeo"`

	Length   float64 `bson:"length" json:"length"`
	Width    float64 `bson:"width" json:"width"`
	Height   float64 `bson:"height" json:"height"`
	Weight   float64 `bson:"weight" json:"weight"`
	Capacity float64 `bson:"capacity" json:"capacity"`

	PricePerDay        float64 `bson:"pricePerDay" json:"pricePerDay"`
	SecurityDeposit    float64 `bson:"securityDeposit" json:"securityDeposit"`
	CancellationPolicy string  `bson:"cancellationPolicy" json:"cancellationPolicy"`
	MinRentalDuration  int     `bson:"minRentalDuration" json:"minRentalDuration"`
	MaxRentalDuration  *int    `bson:"maxRentalDuration,omitempty" json:"maxRentalDuration"`

	// Features holds the JSON-encoded selected accessories, as submitted.
	Features               string  `bson:"features" json:"features"`
	RequiresDriversLicense bool    `bson:"requiresDriversLicense" json:"requiresDriversLicense"`
	LicenseType            string  `bson:"licenseType,omitempty" json:"licenseType,omitempty"`
	IncludesInsurance      bool    `bson:"includesInsurance" json:"includesInsurance"`
	HomeDelivery           bool    `bson:"homeDelivery" json:"homeDelivery"`
	DeliveryFee            float64 `bson:"deliveryFee" json:"deliveryFee"`
	MaxDeliveryDistance    *int    `bson:"maxDeliveryDistance,omitempty" json:"maxDeliveryDistance"`
	Instructions           string  `bson:"instructions" json:"instructions"`

	Images       []TrailerImage    `bson:"images" json:"images"`
	Availability []DayAvailability `bson:"availability" json:"availability"`

	Available   bool      `bson:"available" json:"available"`
	Rating      float64   `bson:"rating" json:"rating"`
	ReviewCount int       `bson:"reviewCount" json:"reviewCount"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// TrailerApiData is the wire payload the listing workflow submits. All
// numeric fields are already parsed; unparseable input arrives as 0 or null.
type TrailerApiData struct {
	Type                   string            `json:"type"`
	Title                  string            `json:"title"`
	Description            string            `json:"description"`
	Address                string            `json:"address"`
	City                   string            `json:"city"`
	PostalCode             string            `json:"postalCode"`
	Country                string            `json:"country"`
	Latitude               float64           `json:"latitude"`
	Longitude              float64           `json:"longitude"`
	Length                 float64           `json:"length"`
	Width                  float64           `json:"width"`
	Height                 float64           `json:"height"`
	Weight                 float64           `json:"weight"`
	Capacity               float64           `json:"capacity"`
	PricePerDay            float64           `json:"pricePerDay"`
	SecurityDeposit        float64           `json:"securityDeposit"`
	CancellationPolicy     string            `json:"cancellationPolicy"`
	MinRentalDuration      int               `json:"minRentalDuration"`
	MaxRentalDuration      *int              `json:"maxRentalDuration"`
	Features               string            `json:"features"`
	RequiresDriversLicense bool              `json:"requiresDriversLicense"`
	LicenseType            string            `json:"licenseType,omitempty"`
	IncludesInsurance      bool              `json:"includesInsurance"`
	HomeDelivery           bool              `json:"homeDelivery"`
	DeliveryFee            float64           `json:"deliveryFee"`
	MaxDeliveryDistance    *int              `json:"maxDeliveryDistance"`
	Instructions           string            `json:"instructions"`
	Images                 []TrailerImage    `json:"images"`
	Availability           []DayAvailability `json:"availability"`
}

// TrailerSearchCriteria filters the public trailer search.
type TrailerSearchCriteria struct {
	City        string
	Type        string
	MaxPrice    float64
	MaxDistance float64
	Latitude    float64
	Longitude   float64
}
