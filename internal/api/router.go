package api

import (
	"net/http"
	"visa-route-checker/internal/api/handlers"
	"visa-route-checker/internal/ports"
)

type RouterConfig struct {
	Provider    ports.FlightOfferProvider
	Recorder    ports.CheckRecorder // nil disables search history
	OfferSource string
	MaxResults  int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{
		OfferSource:    cfg.OfferSource,
		HistoryEnabled: cfg.Recorder != nil,
	}
	checkHandler := &handlers.CheckHandler{
		Provider:   cfg.Provider,
		Recorder:   cfg.Recorder,
		MaxResults: cfg.MaxResults,
	}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/checks", checkHandler.Checks)

	return requestIDMiddleware(loggingMiddleware(mux))
}
