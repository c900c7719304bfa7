package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/reconciling"
	"github.com/vfg2006/ticket-reconciler-api/pkg/apiErrors"
	"github.com/vfg2006/ticket-reconciler-api/pkg/log"
)

// GetValidationReport produz o relatório de validação dos tickets do owner,
// opcionalmente comparado com totais esperados informados pelo chamador
func GetValidationReport(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ownerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("owner_id", ownerID).Info("validation: building validation report")

		var expectedCount *int
		if raw := r.URL.Query().Get("expected_count"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"owner_id":       ownerID,
					"expected_count": raw,
				}).Warn("validation: invalid expected_count parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro expected_count deve ser um inteiro", nil)
				return
			}
			expectedCount = &parsed
		}

		var expectedTotal *float64
		if raw := r.URL.Query().Get("expected_total"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				logger.WithFields(log.Fields{
					"owner_id":       ownerID,
					"expected_total": raw,
				}).Warn("validation: invalid expected_total parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro expected_total deve ser numérico", nil)
				return
			}
			expectedTotal = &parsed
		}

		report, err := service.BuildValidationReport(ownerID, expectedCount, expectedTotal)
		if err != nil {
			logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"error":    err.Error(),
			}).Error("validation: failed to build validation report")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao produzir relatório de validação", nil)
			return
		}

		logger.WithFields(log.Fields{
			"owner_id":     ownerID,
			"ticket_count": report.ActualTicketCount,
			"anomalous":    len(report.AnomalousTickets),
		}).Info("validation: report produced")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"error":    err.Error(),
			}).Error("validation: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
