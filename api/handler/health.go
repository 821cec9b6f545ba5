package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/routinely/backend/api/transport"
	"github.com/routinely/backend/internal/infrastructure/journal"
	"github.com/routinely/backend/internal/infrastructure/monitor"
	"github.com/routinely/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
	journal *journal.Store
}

func NewHealthHandler(mon *monitor.Monitor, jrnl *journal.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
		journal:     jrnl,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()

	var lastRun *journal.Entry
	if h.journal != nil {
		if entry, err := h.journal.LastRun(); err == nil {
			lastRun = entry
		}
	}

	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"services": map[string]interface{}{
			"postgresql": status.PostgreSQL,
			"redis":      status.Redis,
			"journal": map[string]interface{}{
				"online": status.Journal,
				"runs":   status.JournalRuns,
			},
		},
		"last_generation": lastRun,
	}

	if status.PostgreSQL && status.Redis {
		h.respondSuccess(ctx, http.StatusOK, payload)
		return
	}
	h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewError("DEGRADED", "dependencies unhealthy", payload))
}
