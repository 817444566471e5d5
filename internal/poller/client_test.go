package poller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/http/httptrace"
	"strings"
	"testing"
	"time"
)

// TestClient_StatusLine verifies that Fetch captures the status code and
// reason phrase from the response status line.
func TestClient_StatusLine(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantReason string
	}{
		{name: "200 OK", statusCode: http.StatusOK, wantReason: "OK"},
		{name: "404 Not Found", statusCode: http.StatusNotFound, wantReason: "Not Found"},
		{name: "500 Internal Server Error", statusCode: http.StatusInternalServerError, wantReason: "Internal Server Error"},
		{name: "503 Service Unavailable", statusCode: http.StatusServiceUnavailable, wantReason: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte("body is discarded"))
			}))
			defer server.Close()

			client := NewClient()
			defer client.Close()

			resp := client.Fetch(context.Background(), server.URL, 5*time.Second)
			if resp.Error != nil {
				t.Fatalf("Fetch error = %v, want nil", resp.Error)
			}
			if resp.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", resp.StatusCode, tt.statusCode)
			}
			if resp.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", resp.Reason, tt.wantReason)
			}
			if resp.Latency <= 0 {
				t.Errorf("Latency = %v, want > 0", resp.Latency)
			}
		})
	}
}

// TestClient_ConnectionRefused verifies that a refused connection surfaces
// as an error in the Response rather than a panic or a zero value.
func TestClient_ConnectionRefused(t *testing.T) {
	// grab a URL, then close the server so nothing is listening
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient()
	defer client.Close()

	resp := client.Fetch(context.Background(), url, time.Second)
	if resp.Error == nil {
		t.Fatal("Fetch error = nil, want connection error")
	}
	if resp.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for failed request", resp.StatusCode)
	}
	if !strings.Contains(resp.Error.Error(), "request failed") {
		t.Errorf("Error = %q, want to contain 'request failed'", resp.Error)
	}
}

// TestClient_Timeout verifies that a request exceeding the timeout fails
// with a deadline error instead of hanging.
func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	resp := client.Fetch(context.Background(), server.URL, 50*time.Millisecond)
	if resp.Error == nil {
		t.Fatal("Fetch error = nil, want timeout error")
	}
	if !errors.Is(resp.Error, context.DeadlineExceeded) {
		t.Errorf("Error = %v, want context.DeadlineExceeded in chain", resp.Error)
	}
}

// TestClient_InvalidURL verifies that an unparseable URL is reported as a
// request-creation error.
func TestClient_InvalidURL(t *testing.T) {
	client := NewClient()
	defer client.Close()

	resp := client.Fetch(context.Background(), "http://a b.example.com/", time.Second)
	if resp.Error == nil {
		t.Fatal("Fetch error = nil, want error for invalid URL")
	}
	if !strings.Contains(resp.Error.Error(), "failed to create request") {
		t.Errorf("Error = %q, want to contain 'failed to create request'", resp.Error)
	}
}

// TestClient_ConnectionReuse verifies that sequential requests reuse the
// same connection: the body is fully drained each time, so the transport
// can return the connection to the pool instead of opening a new one.
func TestClient_ConnectionReuse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient()
	defer client.Close()

	var reusedCount int
	trace := &httptrace.ClientTrace{
		GotConn: func(info httptrace.GotConnInfo) {
			if info.Reused {
				reusedCount++
			}
		},
	}

	const numRequests = 100

	for i := 0; i < numRequests; i++ {
		ctx := httptrace.WithClientTrace(context.Background(), trace)
		resp := client.Fetch(ctx, server.URL, 5*time.Second)
		if resp.Error != nil {
			t.Fatalf("request %d failed: %v", i, resp.Error)
		}
	}

	// every request after the first should reuse the connection; allow
	// some tolerance for the pool occasionally cycling a connection
	expectedMinReuse := numRequests - 5
	if reusedCount < expectedMinReuse {
		t.Errorf("expected at least %d reused connections, got %d out of %d requests",
			expectedMinReuse, reusedCount, numRequests)
	}
}

// TestClient_ConnectionReleasedAfterFailure verifies the client remains
// usable after a failed request: the failure does not leak or wedge the
// connection pool.
func TestClient_ConnectionReleasedAfterFailure(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	live := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer live.Close()

	client := NewClient()
	defer client.Close()

	for i := 0; i < 10; i++ {
		if resp := client.Fetch(context.Background(), deadURL, time.Second); resp.Error == nil {
			t.Fatalf("request %d to dead server succeeded unexpectedly", i)
		}
	}

	resp := client.Fetch(context.Background(), live.URL, time.Second)
	if resp.Error != nil {
		t.Errorf("request after failures failed: %v", resp.Error)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
}

// TestClient_Close verifies that Close() is safe to call, idempotent, and
// handles a nil receiver.
func TestClient_Close(t *testing.T) {
	client := NewClient()

	// should not panic
	client.Close()
	client.Close()

	var nilClient *Client
	nilClient.Close()
}
