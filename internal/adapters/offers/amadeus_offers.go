package offers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"visa-route-checker/internal/domain"
	"visa-route-checker/internal/ports"
)

type offersResponse struct {
	Data *[]offerPayload `json:"data"`
}

type offerPayload struct {
	ID          string `json:"id"`
	Itineraries []struct {
		Segments []struct {
			Departure struct {
				IataCode string `json:"iataCode"`
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
			} `json:"arrival"`
		} `json:"segments"`
	} `json:"itineraries"`
}

// searchOffers calls /v2/shopping/flight-offers for a single adult.
// Any failure is reported as *domain.SearchError with the raw body attached.
func (a *AmadeusOfferProvider) searchOffers(
	ctx context.Context,
	token string,
	q ports.OfferQuery,
) ([]domain.FlightOffer, error) {
	endpoint := a.baseURL + "/v2/shopping/flight-offers"

	req, err := a.newRequest(ctx, http.MethodGet, endpoint, nil, "")
	if err != nil {
		return nil, &domain.SearchError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	params := req.URL.Query()
	params.Set("originLocationCode", q.Origin.String())
	params.Set("destinationLocationCode", q.Destination.String())
	params.Set("departureDate", q.DepartureDate.Format("2006-01-02"))
	params.Set("adults", "1")
	params.Set("max", strconv.Itoa(q.MaxResults))
	req.URL.RawQuery = params.Encode()

	body, err := a.do(req)
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) {
			return nil, &domain.SearchError{
				StatusCode: he.Code,
				Body:       he.Body,
				Err:        errors.New("unexpected status"),
			}
		}
		return nil, &domain.SearchError{Err: fmt.Errorf("execute request: %w", err)}
	}

	var decoded offersResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &domain.SearchError{
			StatusCode: http.StatusOK,
			Body:       string(body),
			Err:        fmt.Errorf("decode flight offers: %w", err),
		}
	}

	if decoded.Data == nil {
		return nil, &domain.SearchError{
			StatusCode: http.StatusOK,
			Body:       string(body),
			Err:        errors.New("response has no data array"),
		}
	}

	out := make([]domain.FlightOffer, 0, len(*decoded.Data))
	for _, o := range *decoded.Data {
		offer := domain.FlightOffer{
			ID:          o.ID,
			Itineraries: make([]domain.Itinerary, 0, len(o.Itineraries)),
		}
		for _, it := range o.Itineraries {
			segments := make([]domain.Segment, 0, len(it.Segments))
			for _, s := range it.Segments {
				segments = append(segments, domain.NewSegment(s.Departure.IataCode, s.Arrival.IataCode))
			}
			offer.Itineraries = append(offer.Itineraries, domain.Itinerary{Segments: segments})
		}
		out = append(out, offer)
	}

	return out, nil
}
