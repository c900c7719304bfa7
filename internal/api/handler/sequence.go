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

// GetSequenceGaps reporta os números de sequência ausentes de uma loja no
// intervalo [from, to]
func GetSequenceGaps(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		ownerID := params.ByName("id")
		storeID := params.ByName("store_id")

		logger.WithFields(log.Fields{
			"owner_id": ownerID,
			"store_id": storeID,
		}).Info("sequence: finding missing sequences")

		from, err := strconv.Atoi(r.URL.Query().Get("from"))
		if err != nil {
			logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"store_id": storeID,
				"from":     r.URL.Query().Get("from"),
			}).Warn("sequence: invalid from parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRange, "Parâmetro from deve ser um inteiro", nil)
			return
		}

		to, err := strconv.Atoi(r.URL.Query().Get("to"))
		if err != nil {
			logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"store_id": storeID,
				"to":       r.URL.Query().Get("to"),
			}).Warn("sequence: invalid to parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRange, "Parâmetro to deve ser um inteiro", nil)
			return
		}

		// Intervalo é rejeitado antes de qualquer leitura
		if from < 0 || to < from {
			logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"store_id": storeID,
				"from":     from,
				"to":       to,
			}).Warn("sequence: invalid range")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRange, "Intervalo inválido: from deve ser >= 0 e to >= from", nil)
			return
		}

		report, err := service.FindStoreSequenceGaps(ownerID, storeID, from, to)
		if err != nil {
			logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"store_id": storeID,
				"error":    err.Error(),
			}).Error("sequence: failed to find missing sequences")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar sequências ausentes", nil)
			return
		}

		logger.WithFields(log.Fields{
			"owner_id":      ownerID,
			"store_id":      storeID,
			"missing_count": report.MissingCount,
		}).Info("sequence: missing sequences resolved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"store_id": storeID,
				"error":    err.Error(),
			}).Error("sequence: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
