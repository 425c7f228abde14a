package app

import (
	"context"
	"errors"
	"testing"
	"visa-route-checker/internal/adapters/offers"
	"visa-route-checker/internal/config"
)

func TestNewOfferProvider(t *testing.T) {
	cfg := &config.Config{}

	if _, _, err := NewOfferProvider(cfg, false); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}

	p, source, err := NewOfferProvider(cfg, true)
	if err != nil || source != SourceDemo {
		t.Fatalf("demo provider: source=%q err=%v", source, err)
	}
	if _, ok := p.(*offers.DemoOfferProvider); !ok {
		t.Fatalf("demo provider type = %T", p)
	}

	cfg.Amadeus = config.AmadeusConfig{ClientID: "id", ClientSecret: "secret", BaseURL: "http://localhost:1"}
	p, source, err = NewOfferProvider(cfg, false)
	if err != nil || source != SourceAmadeus {
		t.Fatalf("amadeus provider: source=%q err=%v", source, err)
	}
	if _, ok := p.(*offers.AmadeusOfferProvider); !ok {
		t.Fatalf("amadeus provider type = %T", p)
	}
}

func TestOpenRecorderDisabledWithoutDatabase(t *testing.T) {
	rec, closeFn, err := OpenRecorder(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil recorder, got %T", rec)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
