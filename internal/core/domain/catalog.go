package domain

import "time"

// Tag is a controlled-vocabulary label. Period is only set on tags used for
// historical places.
type Tag struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Period string `json:"period,omitempty"`
}

// Category groups activities.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Owner is the populated view of the account that owns a catalog entry.
type Owner struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
}

// Activity is an advertiser-owned bookable event.
type Activity struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Location         string     `json:"location"`
	Date             time.Time  `json:"date"`
	Price            float64    `json:"price"`
	SpecialDiscounts string     `json:"special_discounts,omitempty"`
	BookingOpen      bool       `json:"booking_open"`
	AdvertiserID     string     `json:"-"`
	TagIDs           []string   `json:"-"`
	CategoryIDs      []string   `json:"-"`
	Advertiser       *Owner     `json:"advertiser,omitempty"`
	Tags             []Tag      `json:"tags"`
	Categories       []Category `json:"categories"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Itinerary is a tour-guide-owned package of activities.
type Itinerary struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Language       string      `json:"language,omitempty"`
	Price          float64     `json:"price"`
	AvailableDates []time.Time `json:"available_dates,omitempty"`
	TourGuideID    string      `json:"-"`
	ActivityIDs    []string    `json:"-"`
	TourGuide      *Owner      `json:"tour_guide,omitempty"`
	Activities     []Activity  `json:"activities"`
	CreatedAt      time.Time   `json:"created_at"`
}

// ActivityRefs is the reference projection read during a relevance scan.
type ActivityRefs struct {
	ID          string
	TagIDs      []string
	CategoryIDs []string
}

// ItineraryRefs is the reference projection read during a relevance scan.
type ItineraryRefs struct {
	ID          string
	ActivityIDs []string
}

// TextMatch is the single OR-query a relevance search resolves to: the
// entity's own text fields contain Term (case-insensitive), or its id is in
// IDs.
type TextMatch struct {
	Term string
	IDs  []string
}
