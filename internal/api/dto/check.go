package dto

import "time"

type CheckRequest struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	DepartureDate   string `json:"departure_date"`
	PassportCountry string `json:"passport_country"`
	HasUSVisa       bool   `json:"has_us_visa"`
	MaxResults      int    `json:"max_results"`
}

type RouteResponse struct {
	Route   string   `json:"route"`
	Stops   []string `json:"stops"`
	Safe    bool     `json:"safe"`
	Reasons []string `json:"reasons"`
}

type OfferResponse struct {
	Option  int             `json:"option"`
	OfferID string          `json:"offer_id"`
	Safe    bool            `json:"safe"`
	Routes  []RouteResponse `json:"routes"`
}

type CheckResponse struct {
	SearchID        string          `json:"search_id"`
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	DepartureDate   string          `json:"departure_date"`
	PassportCountry string          `json:"passport_country"`
	HasUSVisa       bool            `json:"has_us_visa"`
	Offers          []OfferResponse `json:"offers"`
	SkippedOffers   int             `json:"skipped_offers"`
}

type CheckSummaryResponse struct {
	SearchID        string    `json:"search_id"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	DepartureDate   string    `json:"departure_date"`
	PassportCountry string    `json:"passport_country"`
	HasUSVisa       bool      `json:"has_us_visa"`
	OffersChecked   int       `json:"offers_checked"`
	UnsafeRoutes    int       `json:"unsafe_routes"`
	SkippedOffers   int       `json:"skipped_offers"`
	CheckedAt       time.Time `json:"checked_at"`
}

type ListChecksResponse struct {
	Checks []CheckSummaryResponse `json:"checks"`
}
