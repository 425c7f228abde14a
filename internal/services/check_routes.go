package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visa-route-checker/internal/domain"
	"visa-route-checker/internal/platform/obs"
	"visa-route-checker/internal/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultMaxResults = 3

// Raw user input for one search.
type CheckRequest struct {
	Origin        string
	Destination   string
	DepartureDate time.Time // zero means today
	Passport      domain.PassportCountry
	HasUSVisa     bool
	MaxResults    int // zero means DefaultMaxResults
}

// ErrInvalidRequest wraps every input validation failure of CheckRoutes.
// Those errors are returned unwrapped, so their text is safe to show to callers.
var ErrInvalidRequest = errors.New("invalid check request")

var now = time.Now

// NormalizeRequest applies defaults and validates a request.
func NormalizeRequest(req CheckRequest) (domain.CheckQuery, error) {
	q := domain.CheckQuery{
		Origin:        domain.NormalizeAirport(req.Origin),
		Destination:   domain.NormalizeAirport(req.Destination),
		DepartureDate: req.DepartureDate,
		Passport:      req.Passport,
		HasUSVisa:     req.HasUSVisa,
		MaxResults:    req.MaxResults,
	}

	if q.Origin.IsZero() {
		return q, fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if q.Destination.IsZero() {
		return q, fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !q.Origin.Valid() {
		return q, fmt.Errorf("%w: origin %q is not a three-letter airport code", ErrInvalidRequest, q.Origin)
	}
	if !q.Destination.Valid() {
		return q, fmt.Errorf("%w: destination %q is not a three-letter airport code", ErrInvalidRequest, q.Destination)
	}
	if q.Origin == q.Destination {
		return q, fmt.Errorf("%w: origin and destination are both %s", ErrInvalidRequest, q.Origin)
	}

	passport, err := domain.ParsePassportCountry(string(q.Passport))
	if err != nil {
		return q, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	q.Passport = passport

	// The US visa question is never asked of US citizens.
	if q.Passport.IsUnitedStates() {
		q.HasUSVisa = false
	}

	if q.DepartureDate.IsZero() {
		q.DepartureDate = now()
	}
	y, m, d := q.DepartureDate.Date()
	q.DepartureDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	if q.MaxResults == 0 {
		q.MaxResults = DefaultMaxResults
	}
	if q.MaxResults < 1 || q.MaxResults > 250 {
		return q, fmt.Errorf("%w: max results must be between 1 and 250", ErrInvalidRequest)
	}

	return q, nil
}

// CheckRoutes runs one search: fetch offers, extract the route of every
// itinerary and evaluate it for visa risk.
//
// Offers with a malformed itinerary are dropped and counted in Skipped.
// Auth and search failures abort the whole search. When recorder is non-nil
// the result is written to it; a recording failure is logged and ignored.
func CheckRoutes(
	ctx context.Context,
	req CheckRequest,
	provider ports.FlightOfferProvider,
	recorder ports.CheckRecorder,
) (_ *domain.CheckResult, err error) {
	if provider == nil {
		return nil, errors.New("check routes: provider must be non-nil")
	}

	q, err := NormalizeRequest(req)
	if err != nil {
		return nil, err
	}

	searchID := uuid.NewString()
	if obs.RequestID(ctx) == "" {
		ctx = obs.WithRequestID(ctx, searchID)
	}
	defer obs.Time(ctx, "services.CheckRoutes")(&err)

	offers, err := provider.FetchOffers(ctx, ports.OfferQuery{
		Origin:        q.Origin,
		Destination:   q.Destination,
		DepartureDate: q.DepartureDate,
		MaxResults:    q.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("check routes: fetch offers %s -> %s: %w", q.Origin, q.Destination, err)
	}

	result := &domain.CheckResult{
		SearchID:  searchID,
		Query:     q,
		CheckedAt: now().UTC(),
		Offers:    make([]domain.OfferCheck, 0, len(offers)),
	}

	for i, offer := range offers {
		check, err := checkOffer(i+1, offer, q)
		if err != nil {
			obs.WithRequest(ctx).Warn("skipping offer",
				zap.Int("option", i+1),
				zap.String("offer_id", offer.ID),
				zap.Error(err),
			)
			result.Skipped++
			continue
		}
		result.Offers = append(result.Offers, check)
	}

	if recorder != nil {
		if err := recorder.RecordCheck(ctx, *result); err != nil {
			obs.WithRequest(ctx).Warn("record check failed", zap.Error(err))
		}
	}

	return result, nil
}

func checkOffer(option int, offer domain.FlightOffer, q domain.CheckQuery) (domain.OfferCheck, error) {
	if len(offer.Itineraries) == 0 {
		return domain.OfferCheck{}, fmt.Errorf("check offer %d: no itineraries: %w", option, domain.ErrMalformedItinerary)
	}

	check := domain.OfferCheck{
		Option:  option,
		OfferID: offer.ID,
		Routes:  make([]domain.RouteCheck, 0, len(offer.Itineraries)),
	}

	for j, it := range offer.Itineraries {
		route, err := ExtractRoute(it)
		if err != nil {
			return domain.OfferCheck{}, fmt.Errorf("check offer %d: itinerary %d: %w", option, j+1, err)
		}

		verdict, err := EvaluateRoute(route, q.Passport, q.HasUSVisa)
		if err != nil {
			return domain.OfferCheck{}, fmt.Errorf("check offer %d: itinerary %d: %w", option, j+1, err)
		}

		check.Routes = append(check.Routes, domain.RouteCheck{Route: route, Verdict: verdict})
	}

	return check, nil
}
