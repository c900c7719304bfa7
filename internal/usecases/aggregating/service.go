package aggregating

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-reconciler-api/infrastructure/repository"
	"github.com/vfg2006/ticket-reconciler-api/internal/config"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/reconciling"
	"github.com/vfg2006/ticket-reconciler-api/pkg/utils"
)

// Service implementa Aggregator e, com cache habilitado, CachedAggregator
type Service struct {
	cfg                *config.Config
	recordRepository   repository.RecordRepository
	lineItemRepository repository.LineItemRepository
	snapshotRepository repository.SnapshotRepository
	useCache           bool

	// Injetável nos testes para janelas determinísticas
	now func() time.Time
}

// NewService cria o serviço de agregação sem cache
func NewService(
	cfg *config.Config,
	recordRepo repository.RecordRepository,
	lineItemRepo repository.LineItemRepository,
) *Service {
	return &Service{
		cfg:                cfg,
		recordRepository:   recordRepo,
		lineItemRepository: lineItemRepo,
		snapshotRepository: nil, // Inicialmente null
		useCache:           false,
		now:                time.Now,
	}
}

// WithCache habilita a camada de cache de snapshots
func (s *Service) WithCache(snapshotRepo repository.SnapshotRepository) *Service {
	s.snapshotRepository = snapshotRepo
	s.useCache = snapshotRepo != nil
	return s
}

// GetMetrics resolve a janela dos últimos windowDays dias (incluindo hoje) e
// devolve o snapshot de métricas, preferindo o cache quando fresco.
//
// Máquina de estados por chave (owner_id, window_days):
// Missing → sem snapshot; Fresh → hash armazenado bate com o digest atual;
// Stale → divergiu. Fresh retorna o armazenado sem reagregar; Missing/Stale
// recomputam de forma síncrona e sobrescrevem em uma única escrita
// (last-write-wins, sem lock entre processos).
func (s *Service) GetMetrics(ownerID string, windowDays int) (*domain.MetricsSnapshotEntry, domain.CacheState, error) {
	if windowDays <= 0 {
		return nil, "", fmt.Errorf("comprimento de janela inválido: %d dias", windowDays)
	}

	start, end := s.currentWindow(windowDays)

	dataHash, err := s.computeDataHash(ownerID, start, end)
	if err != nil {
		return nil, "", err
	}

	state := domain.CacheStateMissing

	if s.useCache {
		entry, err := s.snapshotRepository.GetByOwnerAndWindow(ownerID, windowDays)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"owner_id":    ownerID,
				"window_days": windowDays,
			}).Warn("Erro ao buscar snapshot do cache; recomputando")
		}

		if entry != nil {
			if entry.DataHash == dataHash {
				logrus.WithFields(logrus.Fields{
					"owner_id":    ownerID,
					"window_days": windowDays,
					"data_hash":   dataHash,
				}).Debug("Snapshot fresco no cache; sem reagregação")
				return entry, domain.CacheStateFresh, nil
			}
			state = domain.CacheStateStale
		}
	}

	snapshot, err := s.ComputeWindowSnapshot(ownerID, start, end)
	if err != nil {
		return nil, "", err
	}

	snapshot.DataHash = dataHash
	snapshot.ComputedAt = s.now()

	entry := &domain.MetricsSnapshotEntry{
		OwnerID:    ownerID,
		WindowDays: windowDays,
		Snapshot:   snapshot,
		DataHash:   dataHash,
		ComputedAt: snapshot.ComputedAt,
	}

	if s.useCache {
		if err := s.snapshotRepository.SaveOrUpdate(entry); err != nil {
			// Snapshot é dado derivado: falha de escrita não invalida o resultado
			logrus.WithError(err).WithFields(logrus.Fields{
				"owner_id":    ownerID,
				"window_days": windowDays,
			}).Warn("Erro ao salvar snapshot no cache")
		}
	}

	logrus.WithFields(logrus.Fields{
		"owner_id":    ownerID,
		"window_days": windowDays,
		"cache_state": state,
		"revenue":     snapshot.Revenue,
	}).Info("Snapshot de métricas recomputado")

	return entry, state, nil
}

// ComputeWindowSnapshot agrega a janela [start, end) e calcula os deltas
// contra a janela anterior de mesmo comprimento. As duas agregações são
// independentes e rodam em paralelo.
func (s *Service) ComputeWindowSnapshot(ownerID string, start, end time.Time) (*domain.MetricsSnapshot, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("janela inválida: fim (%s) não é posterior ao início (%s)",
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	prevStart, prevEnd := PreviousWindow(start, end)

	var (
		current, previous *domain.MetricsSnapshot
		currentErr        error
		previousErr       error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currentErr = s.aggregateWindow(ownerID, start, end)
	}()

	go func() {
		defer wg.Done()
		previous, previousErr = s.aggregateWindow(ownerID, prevStart, prevEnd)
	}()

	wg.Wait()

	if currentErr != nil {
		return nil, currentErr
	}

	// A janela anterior é melhor-esforço: sem baseline, sem deltas
	if previousErr != nil {
		logrus.WithError(previousErr).WithFields(logrus.Fields{
			"owner_id":   ownerID,
			"prev_start": prevStart.Format(time.DateOnly),
			"prev_end":   prevEnd.Format(time.DateOnly),
		}).Warn("Erro ao agregar janela anterior; deltas omitidos")
		return current, nil
	}

	current.Deltas = ComputeDeltas(current, previous)

	return current, nil
}

// aggregateWindow carrega os insumos da janela e roda o agregador puro
func (s *Service) aggregateWindow(ownerID string, start, end time.Time) (*domain.MetricsSnapshot, error) {
	filter := repository.RecordFilter{Start: &start, End: &end}

	truncated := false
	recordsByStream := make(map[domain.Stream][]*domain.RawRecord)

	for _, stream := range []domain.Stream{domain.StreamSale, domain.StreamReturn, domain.StreamGiftCard} {
		set, err := s.recordRepository.ListAllByOwner(
			ownerID,
			stream,
			filter,
			s.cfg.Metrics.PageSize,
			s.cfg.Metrics.MaxRecords,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar registros da origem %s: %w", stream, err)
		}

		recordsByStream[stream] = set.Records
		truncated = truncated || set.Truncated
	}

	lineItems, err := s.lineItemRepository.ListAllByOwner(
		ownerID,
		start, end,
		s.cfg.Metrics.PageSize,
		s.cfg.Metrics.MaxRecords,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar itens de linha: %w", err)
	}

	allRecords := make([]*domain.RawRecord, 0,
		len(recordsByStream[domain.StreamSale])+
			len(recordsByStream[domain.StreamReturn])+
			len(recordsByStream[domain.StreamGiftCard]),
	)
	allRecords = append(allRecords, recordsByStream[domain.StreamSale]...)
	allRecords = append(allRecords, recordsByStream[domain.StreamReturn]...)
	allRecords = append(allRecords, recordsByStream[domain.StreamGiftCard]...)

	tickets := reconciling.Canonicalize(allRecords)

	snapshot := Aggregate(
		tickets,
		recordsByStream[domain.StreamReturn],
		recordsByStream[domain.StreamGiftCard],
		lineItems.Items,
		start, end,
	)
	snapshot.Truncated = truncated || lineItems.Truncated

	return snapshot, nil
}

// computeDataHash resume o conjunto de registros da janela em um digest
// determinístico. Aproximação assumida: contagem + extremos de created_at +
// soma por origem, não um hash de conteúdo completo — troca exatidão por
// custo de leitura (uma consulta agregada por origem).
func (s *Service) computeDataHash(ownerID string, start, end time.Time) (string, error) {
	h := sha256.New()

	for _, stream := range []domain.Stream{domain.StreamSale, domain.StreamReturn, domain.StreamGiftCard} {
		digest, err := s.recordRepository.GetDigest(ownerID, stream, start, end)
		if err != nil {
			return "", fmt.Errorf("erro ao resumir registros da origem %s: %w", stream, err)
		}

		fmt.Fprintf(h, "%s:%d|%d|%d|%s;",
			stream,
			digest.Count,
			digest.MinCreatedAt.UTC().UnixNano(),
			digest.MaxCreatedAt.UTC().UnixNano(),
			digest.TotalAmount.String(),
		)
	}

	return fmt.Sprintf("%x", h.Sum(nil))[:16], nil
}

// currentWindow resolve a janela [hoje−(windowDays−1), amanhã) — os últimos
// windowDays dias de calendário incluindo hoje
func (s *Service) currentWindow(windowDays int) (time.Time, time.Time) {
	end := utils.TruncateToDay(s.now()).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -windowDays)
	return start, end
}
