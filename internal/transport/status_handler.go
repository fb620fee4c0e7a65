package transport

import (
	"encoding/json"
	"net/http"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// StatusResponse is the JSON body of GET /v1/status.
type StatusResponse struct {
	Healthy             bool       `json:"healthy"`
	Running             bool       `json:"running"`
	Sequence            *uint32    `json:"sequence,omitempty"`
	FatalError          string     `json:"fatal_error,omitempty"`
	FatalTransactionID  int64      `json:"fatal_transaction_id,omitempty"`
	LastCycleID         string     `json:"last_cycle_id,omitempty"`
	LastCycleStartedAt  *time.Time `json:"last_cycle_started_at,omitempty"`
	LastCycleDurationMS int64      `json:"last_cycle_duration_ms"`
	LastCycleError      string     `json:"last_cycle_error,omitempty"`
}

// RegisterStatusRoutes mounts the status endpoints on the gateway mux.
func RegisterStatusRoutes(mux *gwruntime.ServeMux, source StatusSource, logger *zap.Logger) error {
	h := &statusHandler{source: source, logger: logger.Named("status")}
	if err := mux.HandlePath(http.MethodGet, "/v1/status", h.status); err != nil {
		return err
	}
	return mux.HandlePath(http.MethodGet, "/v1/healthz", h.healthz)
}

type statusHandler struct {
	source StatusSource
	logger *zap.Logger
}

func (h *statusHandler) status(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	s := h.source.Status()
	resp := StatusResponse{
		Healthy:             s.FatalError == "",
		Running:             s.Running,
		FatalError:          s.FatalError,
		FatalTransactionID:  s.FatalTransactionID,
		LastCycleID:         s.LastCycleID,
		LastCycleDurationMS: s.LastCycleDuration.Milliseconds(),
		LastCycleError:      s.LastCycleError,
	}
	if s.SequenceInitialized {
		seq := s.Sequence
		resp.Sequence = &seq
	}
	if !s.LastCycleStartedAt.IsZero() {
		started := s.LastCycleStartedAt.UTC()
		resp.LastCycleStartedAt = &started
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Warn("write status response", zap.Error(err))
	}
}

func (h *statusHandler) healthz(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	if h.source.Status().FatalError != "" {
		http.Error(w, "fatal error latched", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
