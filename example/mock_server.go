package main

import (
	"log/slog"
	"math/rand"
	"net/http"
)

// StartMockTarget serves a status endpoint that is occasionally flaky,
// so the example shows both success and failure report lines.
func StartMockTarget(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		// ~1 in 5 requests return a server error
		if rand.Intn(5) == 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("mock target failed", "error", err)
	}
}
