package activitysource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

func TestClientListFeedings(t *testing.T) {
	start := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/feedings" {
			t.Errorf("path = %s, want /api/v1/feedings", r.URL.Path)
		}
		if got := r.URL.Query().Get("start"); got != "1709424000000" {
			t.Errorf("start = %s, want 1709424000000", got)
		}
		if r.Header.Get("x-request-id") == "" {
			t.Errorf("request is missing the x-request-id header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"f-1","timestamp":1709456400000,"ounces":4.5}],"count":1}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	feedings, err := c.ListFeedings(context.Background(), start, end)
	if err != nil {
		t.Fatalf("ListFeedings: %v", err)
	}
	if len(feedings) != 1 {
		t.Fatalf("expected 1 feeding, got %d", len(feedings))
	}
	if feedings[0].ID != "f-1" || feedings[0].Ounces != 4.5 {
		t.Errorf("unexpected feeding: %+v", feedings[0])
	}
	if feedings[0].Timestamp.UnixMilli() != 1709456400000 {
		t.Errorf("timestamp = %v, want epoch ms 1709456400000", feedings[0].Timestamp)
	}
}

func TestClientGetKidProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"kid-1","name":"Mio","targetDailyOunces":28,"typicalFeedOunces":4,"typicalNapHours":1.5}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	kid, err := c.GetKidProfile(context.Background())
	if err != nil {
		t.Fatalf("GetKidProfile: %v", err)
	}
	if kid.Name != "Mio" || kid.TypicalNapHours != 1.5 {
		t.Errorf("unexpected kid profile: %+v", kid)
	}
}

func TestClientGetKidProfileMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.GetKidProfile(context.Background()); !errors.Is(err, domain.ErrKidNotFound) {
		t.Errorf("expected kid-not-found error, got %v", err)
	}
}

func TestClientNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.ListSleepSessions(context.Background(), time.Now().Add(-time.Hour), time.Now()); err == nil {
		t.Errorf("expected error for 502 response")
	}
}
