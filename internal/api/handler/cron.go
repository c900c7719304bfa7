package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-reconciler-api/internal/scheduler"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/backfilling"
	"github.com/vfg2006/ticket-reconciler-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshotRefresh = "snapshot-refresh"
	CronJobTypeBackfill        = "backfill"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotRefreshService *scheduler.SnapshotRefreshService
	BackfillService        backfilling.Backfiller
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}

		switch cronType {
		case CronJobTypeSnapshotRefresh:
			if services.SnapshotRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de snapshots não disponível", nil)
				return
			}
			services.SnapshotRefreshService.TriggerManualSync()

		case CronJobTypeBackfill:
			if services.BackfillService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de backfill não disponível", nil)
				return
			}

			// Backfill é escopado por owner e roda um lote de forma síncrona
			ownerID := r.URL.Query().Get("owner_id")
			if ownerID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro owner_id é obrigatório para o backfill", nil)
				return
			}

			result, err := services.BackfillService.Run(ownerID)
			if err != nil {
				logrus.WithError(err).Error("Erro ao executar backfill manual")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar backfill", nil)
				return
			}
			response["result"] = result

		case CronJobTypeAll:
			if services.SnapshotRefreshService != nil {
				services.SnapshotRefreshService.TriggerManualSync()
			}
			if services.BackfillService != nil {
				if ownerID := r.URL.Query().Get("owner_id"); ownerID != "" {
					result, err := services.BackfillService.Run(ownerID)
					if err != nil {
						logrus.WithError(err).Error("Erro ao executar backfill manual")
					} else {
						response["backfill_result"] = result
					}
				}
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot-refresh, backfill, all", nil)
			return
		}

		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"snapshot-refresh": services.SnapshotRefreshService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
