package health

import (
	"encoding/json"
	"net/http"
)

func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

// ReadinessReporter reports whether the service can serve and which
// optional subsystems are attached.
type ReadinessReporter interface {
	Ready() (ok bool, subsystems []string)
}

func Readiness(rr ReadinessReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		type resp struct {
			Status     string   `json:"status"`
			Subsystems []string `json:"subsystems,omitempty"`
		}
		ready, subs := rr.Ready()
		out := resp{Status: "not_ready"}
		if ready {
			out.Status = "ready"
			out.Subsystems = subs
		}
		w.Header().Set("Content-Type", "application/json")
		if !ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}
