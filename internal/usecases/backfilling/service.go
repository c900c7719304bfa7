package backfilling

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-reconciler-api/infrastructure/repository"
	"github.com/vfg2006/ticket-reconciler-api/internal/config"
	"github.com/vfg2006/ticket-reconciler-api/pkg/utils"
)

// TableResult é o resultado do backfill de uma tabela
type TableResult struct {
	Table   string `json:"table"`
	Updated int64  `json:"updated"`
	HasMore bool   `json:"has_more"`
	Error   string `json:"error,omitempty"`
}

// RunResult agrega o resultado de uma execução de backfill
type RunResult struct {
	RunID   string         `json:"run_id"`
	OwnerID string         `json:"owner_id"`
	Tables  []*TableResult `json:"tables"`
}

// Backfiller marca registros legados sem owner_id
type Backfiller interface {
	Run(ownerID string) (*RunResult, error)
}

type Service struct {
	cfg          *config.Config
	backfillRepo repository.BackfillRepository
}

func NewService(cfg *config.Config, backfillRepo repository.BackfillRepository) Backfiller {
	return &Service{
		cfg:          cfg,
		backfillRepo: backfillRepo,
	}
}

// Run executa um lote de backfill por tabela elegível, marcando até
// BatchSize registros sem owner_id com o owner informado. Falha em uma
// tabela não interrompe as demais; o predicado (owner_id IS NULL) torna
// reexecuções seguras.
func (s *Service) Run(ownerID string) (*RunResult, error) {
	if ownerID == "" {
		return nil, errors.New("owner_id é obrigatório para o backfill")
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador da execução de backfill")
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"owner_id":   ownerID,
		"batch_size": s.cfg.Backfill.BatchSize,
	}).Info("Iniciando execução de backfill de owner_id")

	result := &RunResult{
		RunID:   runID,
		OwnerID: ownerID,
		Tables:  make([]*TableResult, 0, len(repository.BackfillTables)),
	}

	for _, table := range repository.BackfillTables {
		result.Tables = append(result.Tables, s.backfillTable(runID, table, ownerID))
	}

	logrus.WithField("run_id", runID).Info("Execução de backfill concluída")

	return result, nil
}

func (s *Service) backfillTable(runID, table, ownerID string) *TableResult {
	tableResult := &TableResult{Table: table}

	updated, err := s.backfillRepo.TagMissingOwner(table, ownerID, s.cfg.Backfill.BatchSize)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"run_id": runID,
			"table":  table,
		}).Error("Erro ao executar backfill da tabela")
		tableResult.Error = err.Error()
		return tableResult
	}

	tableResult.Updated = updated

	remaining, err := s.backfillRepo.CountMissingOwner(table)
	if err != nil {
		// Contagem é informativa: o lote já foi aplicado
		logrus.WithError(err).WithFields(logrus.Fields{
			"run_id": runID,
			"table":  table,
		}).Warn("Erro ao contar registros pendentes após o backfill")
		tableResult.Error = err.Error()
		return tableResult
	}

	tableResult.HasMore = remaining > 0

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"table":     table,
		"updated":   updated,
		"remaining": remaining,
	}).Info("Backfill da tabela concluído")

	return tableResult
}
