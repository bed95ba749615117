package transcript

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tubescribe/httpclient"
)

func TestTranscriptAPIAttempt(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		expectText string
		expectMiss bool
		expectErr  bool
	}{
		{
			name:       "segments normalized and joined",
			status:     http.StatusOK,
			body:       `[{"text":"a  b","start":0,"duration":2},{"text":"&amp;c","start":2,"duration":2}]`,
			expectText: "a b &c",
		},
		{
			name:       "empty array is a miss",
			status:     http.StatusOK,
			body:       `[]`,
			expectMiss: true,
		},
		{
			name:      "server error",
			status:    http.StatusInternalServerError,
			body:      `oops`,
			expectErr: true,
		},
		{
			name:      "malformed payload",
			status:    http.StatusOK,
			body:      `{"not":"an array"}`,
			expectErr: true,
		},
		{
			name:       "whitespace-only segments are a miss",
			status:     http.StatusOK,
			body:       `[{"text":"   ","start":0,"duration":1}]`,
			expectMiss: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("video_id"); got != "dQw4w9WgXcQ" {
					t.Errorf("expected video_id query param, got %q", got)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			strategy := newTranscriptAPI(httpclient.New(5*time.Second), server.URL)
			result, err := strategy.Attempt(context.Background(), Source{ID: "dQw4w9WgXcQ"})

			if tt.expectErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expectMiss {
				if result != nil {
					t.Errorf("expected miss, got %+v", result)
				}
				return
			}

			if result == nil {
				t.Fatal("expected result, got nil")
			}
			if result.Text != tt.expectText {
				t.Errorf("expected %q, got %q", tt.expectText, result.Text)
			}
			if result.Synthetic {
				t.Error("API results must not be marked synthetic")
			}
		})
	}
}
