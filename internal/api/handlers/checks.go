package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"visa-route-checker/internal/api/dto"
	"visa-route-checker/internal/domain"
	"visa-route-checker/internal/platform/obs"
	"visa-route-checker/internal/ports"
	"visa-route-checker/internal/services"

	"go.uber.org/zap"
)

// CheckHandler runs visa-safety searches and lists past ones.
// Recorder is optional; without it searches are not kept.
type CheckHandler struct {
	Provider   ports.FlightOfferProvider
	Recorder   ports.CheckRecorder
	MaxResults int
}

func (h *CheckHandler) Checks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *CheckHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	var depart time.Time
	if s := strings.TrimSpace(req.DepartureDate); s != "" && !strings.EqualFold(s, "today") {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "departure_date must be YYYY-MM-DD")
			return
		}
		depart = d
	}

	passport := domain.PassportIndia
	if s := strings.TrimSpace(req.PassportCountry); s != "" {
		p, err := domain.ParsePassportCountry(s)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		passport = p
	}

	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = h.MaxResults
	}

	res, err := services.CheckRoutes(r.Context(), services.CheckRequest{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: depart,
		Passport:      passport,
		HasUSVisa:     req.HasUSVisa,
		MaxResults:    maxResults,
	}, h.Provider, h.Recorder)
	if err != nil {
		h.writeCheckError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toCheckResponse(res))
}

func (h *CheckHandler) writeCheckError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *domain.AuthError
	var searchErr *domain.SearchError

	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &authErr):
		obs.WithRequest(r.Context()).Warn("flight search auth failed", zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "failed to get flight search access token")
	case errors.As(err, &searchErr):
		obs.WithRequest(r.Context()).Warn("flight search failed", zap.Error(err))
		writeJSON(w, r, http.StatusBadGateway, map[string]any{
			"error":           "no flights found or flight search error",
			"upstream_status": searchErr.StatusCode,
			"upstream_body":   searchErr.Body,
		})
	default:
		obs.WithRequest(r.Context()).Error("check routes failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func (h *CheckHandler) list(w http.ResponseWriter, r *http.Request) {
	if h.Recorder == nil {
		writeError(w, r, http.StatusServiceUnavailable, "search history is not enabled")
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 100 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = v
	}

	checks, err := h.Recorder.ListRecent(r.Context(), limit)
	if err != nil {
		obs.WithRequest(r.Context()).Error("list checks failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListChecksResponse{Checks: make([]dto.CheckSummaryResponse, 0, len(checks))}
	for _, c := range checks {
		res.Checks = append(res.Checks, dto.CheckSummaryResponse{
			SearchID:        c.SearchID,
			Origin:          c.Origin.String(),
			Destination:     c.Destination.String(),
			DepartureDate:   c.DepartureDate.Format("2006-01-02"),
			PassportCountry: c.Passport.String(),
			HasUSVisa:       c.HasUSVisa,
			OffersChecked:   c.OffersChecked,
			UnsafeRoutes:    c.UnsafeRoutes,
			SkippedOffers:   c.Skipped,
			CheckedAt:       c.CheckedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toCheckResponse(res *domain.CheckResult) dto.CheckResponse {
	q := res.Query
	out := dto.CheckResponse{
		SearchID:        res.SearchID,
		Origin:          q.Origin.String(),
		Destination:     q.Destination.String(),
		DepartureDate:   q.DepartureDate.Format("2006-01-02"),
		PassportCountry: q.Passport.String(),
		HasUSVisa:       q.HasUSVisa,
		Offers:          make([]dto.OfferResponse, 0, len(res.Offers)),
		SkippedOffers:   res.Skipped,
	}

	for _, o := range res.Offers {
		offer := dto.OfferResponse{
			Option:  o.Option,
			OfferID: o.OfferID,
			Safe:    o.Safe(),
			Routes:  make([]dto.RouteResponse, 0, len(o.Routes)),
		}
		for _, rc := range o.Routes {
			stops := make([]string, 0, len(rc.Route))
			for _, c := range rc.Route {
				stops = append(stops, c.String())
			}
			reasons := rc.Verdict.Reasons
			if reasons == nil {
				reasons = []string{}
			}
			offer.Routes = append(offer.Routes, dto.RouteResponse{
				Route:   rc.Route.String(),
				Stops:   stops,
				Safe:    rc.Verdict.Safe(),
				Reasons: reasons,
			})
		}
		out.Offers = append(out.Offers, offer)
	}

	return out
}
