package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ticket-reconciler-api/internal/config"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/aggregating"
	"github.com/vfg2006/ticket-reconciler-api/pkg/apiErrors"
	"github.com/vfg2006/ticket-reconciler-api/pkg/log"
)

// HeaderCacheState expõe ao consumidor o estado do cache que produziu a
// resposta de métricas (missing, fresh ou stale)
const HeaderCacheState = "X-Cache-State"

const maxWindowDays = 365

// GetOwnerMetrics retorna o snapshot de métricas da janela solicitada
func GetOwnerMetrics(service aggregating.CachedAggregator, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ownerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("owner_id", ownerID).Info("metrics: fetching owner metrics")

		windowDays := cfg.Metrics.DefaultWindowDays
		if raw := r.URL.Query().Get("window_days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"owner_id":    ownerID,
					"window_days": raw,
				}).Warn("metrics: invalid window_days parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, "Parâmetro window_days deve ser um inteiro", nil)
				return
			}
			windowDays = parsed
		}

		// Janela é validada antes de qualquer leitura
		if windowDays <= 0 || windowDays > maxWindowDays {
			logger.WithFields(log.Fields{
				"owner_id":    ownerID,
				"window_days": windowDays,
			}).Warn("metrics: window_days out of bounds")

			apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, "Parâmetro window_days deve estar entre 1 e 365", nil)
			return
		}

		entry, state, err := service.GetMetrics(ownerID, windowDays)
		if err != nil {
			logger.WithFields(log.Fields{
				"owner_id":    ownerID,
				"window_days": windowDays,
				"error":       err.Error(),
			}).Error("metrics: failed to compute owner metrics")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao computar métricas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"owner_id":    ownerID,
			"window_days": windowDays,
			"cache_state": state,
		}).Info("metrics: owner metrics resolved")

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(HeaderCacheState, string(state))
		if err := json.NewEncoder(w).Encode(entry.Snapshot); err != nil {
			logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"error":    err.Error(),
			}).Error("metrics: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
