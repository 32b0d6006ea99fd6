package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCanonicalSlugRedirect(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CanonicalSlugRedirect(next)

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "encoded space in post segment",
			path:         "/telefon/en%20iyi%20telefonlar",
			wantStatus:   http.StatusFound,
			wantLocation: "/telefon/en-iyi-telefonlar",
		},
		{
			name:         "space in category segment",
			path:         "/yapay%20zeka/gpt-rehberi",
			wantStatus:   http.StatusFound,
			wantLocation: "/yapay-zeka/gpt-rehberi",
		},
		{
			name:       "clean path passes through",
			path:       "/telefon/en-iyi-telefonlar",
			wantStatus: http.StatusOK,
		},
		{
			name:       "root passes through",
			path:       "/",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if got := rec.Header().Get("Location"); got != tt.wantLocation {
					t.Errorf("Location = %q, want %q", got, tt.wantLocation)
				}
			}
		})
	}
}

func TestCanonicalSlugRedirectOnlyGET(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CanonicalSlugRedirect(next)

	req := httptest.NewRequest(http.MethodPost, "/telefon/en%20iyi", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("POST status = %d, want %d (no redirect)", rec.Code, http.StatusOK)
	}
}
