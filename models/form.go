package models

// TrailerFormData is the flat snapshot of every field across all form
// sections. Numeric inputs stay strings until the API formatter parses them.
// NewTrailerFormData keeps the invariant that the record is always fully
// shaped: no nil slices, every field a defined default.
type TrailerFormData struct {
	// Type section.
	TrailerType string `json:"trailerType"`
	CustomType  string `json:"customType"`

	// Details section. Dimensions in cm, weight/capacity in kg.
	Length   string `json:"length"`
	Width    string `json:"width"`
	Height   string `json:"height"`
	Weight   string `json:"weight"`
	Capacity string `json:"capacity"`

	// Location section. Latitude/Longitude are only set once a map pin has
	// been placed; text fields alone do not complete the section.
	Address    string   `json:"address"`
	City       string   `json:"city"`
	PostalCode string   `json:"postalCode"`
	Country    string   `json:"country"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	// Availability section, canonical representation only.
	WeeklyAvailability []DayAvailability `json:"weeklyAvailability"`

	// Pricing section.
	PricePerDay     string `json:"pricePerDay"`
	SecurityDeposit string `json:"securityDeposit"`

	// Accessories section.
	Accessories []Accessory `json:"accessories"`

	// Photos section.
	Images []ImageItem `json:"images"`

	// Extra section.
	Title                  string `json:"title"`
	Description            string `json:"description"`
	CancellationPolicy     string `json:"cancellationPolicy"`
	MinRentalDuration      string `json:"minRentalDuration"`
	MaxRentalDuration      string `json:"maxRentalDuration"`
	RequiresDriversLicense bool   `json:"requiresDriversLicense"`
	LicenseType            string `json:"licenseType"`
	IncludesInsurance      bool   `json:"includesInsurance"`
	HomeDelivery           bool   `json:"homeDelivery"`
	DeliveryFee            string `json:"deliveryFee"`
	MaxDeliveryDistance    string `json:"maxDeliveryDistance"`
	Instructions           string `json:"instructions"`
	AgreeToTerms           bool   `json:"agreeToTerms"`
}

// NewTrailerFormData returns a fully shaped form with defaults for every field.
func NewTrailerFormData() TrailerFormData {
	return TrailerFormData{
		Country:            "Nederland",
		LicenseType:        "none",
		MinRentalDuration:  "1",
		CancellationPolicy: "flexible",
		WeeklyAvailability: DefaultWeeklyAvailability(),
		Accessories:        []Accessory{},
		Images:             []ImageItem{},
	}
}

// FormUpdate is the wire payload of a form update. Older clients still send
// the nested availableDays/timeSlots availability schema alongside the flat
// fields; it is migrated to the canonical week on receipt.
type FormUpdate struct {
	TrailerFormData
	AvailableDays []string                    `json:"availableDays,omitempty"`
	TimeSlots     map[string][]LegacyTimeSlot `json:"timeSlots,omitempty"`
}

// Legacy returns the embedded legacy availability, or nil when the payload
// carries none.
func (u FormUpdate) Legacy() *LegacyAvailability {
	if len(u.AvailableDays) == 0 && len(u.TimeSlots) == 0 {
		return nil
	}
	return &LegacyAvailability{
		AvailableDays: u.AvailableDays,
		TimeSlots:     u.TimeSlots,
	}
}

// UploadedImages returns only the server-confirmed uploads.
func (f TrailerFormData) UploadedImages() []ImageItem {
	uploaded := make([]ImageItem, 0, len(f.Images))
	for _, img := range f.Images {
		if img.Uploaded && img.URL != "" {
			uploaded = append(uploaded, img)
		}
	}
	return uploaded
}

// IsEmpty reports whether the user has not entered anything worth saving.
func (f TrailerFormData) IsEmpty() bool {
	return f.TrailerType == "" &&
		f.Length == "" && f.Width == "" &&
		f.Address == "" && f.City == "" &&
		f.PricePerDay == "" &&
		len(f.Images) == 0 &&
		f.Title == "" && f.Description == ""
}
