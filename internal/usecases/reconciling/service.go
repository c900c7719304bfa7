package reconciling

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-reconciler-api/infrastructure/repository"
	"github.com/vfg2006/ticket-reconciler-api/internal/config"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
	"github.com/vfg2006/ticket-reconciler-api/pkg/utils"
)

const zeroTotalSampleLimit = 10

// Reconciler expõe as operações de reconciliação de tickets
type Reconciler interface {
	CanonicalTickets(ownerID string, filter repository.RecordFilter) (map[string]*domain.CanonicalTicket, bool, error)
	BuildValidationReport(ownerID string, expectedCount *int, expectedTotal *float64) (*domain.ValidationReport, error)
	FindStoreSequenceGaps(ownerID, storeID string, lo, hi int) (*domain.MissingSequenceReport, error)
}

type Service struct {
	cfg              *config.Config
	recordRepository repository.RecordRepository
}

func NewService(cfg *config.Config, recordRepo repository.RecordRepository) Reconciler {
	return &Service{
		cfg:              cfg,
		recordRepository: recordRepo,
	}
}

// CanonicalTickets carrega as três origens do owner e resolve o mapa
// canônico. O booleano indica se alguma das leituras foi truncada pelo teto
// configurado.
func (s *Service) CanonicalTickets(
	ownerID string,
	filter repository.RecordFilter,
) (map[string]*domain.CanonicalTicket, bool, error) {
	records, truncated, err := s.loadAllStreams(ownerID, filter)
	if err != nil {
		return nil, false, err
	}

	return Canonicalize(records), truncated, nil
}

// BuildValidationReport produz o relatório de qualidade de dados do owner.
// Anomalias e tickets com total zero entram no relatório, nunca como erro.
func (s *Service) BuildValidationReport(
	ownerID string,
	expectedCount *int,
	expectedTotal *float64,
) (*domain.ValidationReport, error) {
	tickets, truncated, err := s.CanonicalTickets(ownerID, repository.RecordFilter{})
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	zeroTotalTickets := make([]string, 0)
	ticketNumbers := make([]string, 0, len(tickets))

	for ticketNumber, ticket := range tickets {
		ticketNumbers = append(ticketNumbers, ticketNumber)
		total = total.Add(ticket.CanonicalTotal)

		if ticket.CanonicalTotal.IsZero() {
			zeroTotalTickets = append(zeroTotalTickets, ticketNumber)
		}
	}

	sort.Strings(zeroTotalTickets)

	histogram, anomalous := ClassifyTicketNumbers(ticketNumbers)

	actualTotal, _ := total.Round(2).Float64()

	report := &domain.ValidationReport{
		ActualTicketCount:    len(tickets),
		ActualTotalAmount:    actualTotal,
		ZeroTotalTicketCount: len(zeroTotalTickets),
		PatternHistogram:     histogram,
		AnomalousTickets:     anomalous,
		Truncated:            truncated,
	}

	if len(zeroTotalTickets) > zeroTotalSampleLimit {
		zeroTotalTickets = zeroTotalTickets[:zeroTotalSampleLimit]
	}
	report.SampleZeroTotalTickets = zeroTotalTickets

	if expectedCount != nil && expectedTotal != nil {
		report.Expected = &domain.ExpectedComparison{
			ExpectedTicketCount: *expectedCount,
			ExpectedTotalAmount: *expectedTotal,
			TicketCountDiff:     report.ActualTicketCount - *expectedCount,
			TotalAmountDiff:     utils.RoundWithTwoDecimalPlace(report.ActualTotalAmount - *expectedTotal),
		}
	}

	logrus.WithFields(logrus.Fields{
		"owner_id":       ownerID,
		"ticket_count":   report.ActualTicketCount,
		"zero_totals":    report.ZeroTotalTicketCount,
		"anomalous":      len(report.AnomalousTickets),
		"read_truncated": truncated,
	}).Info("Relatório de validação de tickets produzido")

	return report, nil
}

// FindStoreSequenceGaps valida o intervalo e reporta as sequências ausentes
// da loja. Intervalo inválido é rejeitado antes de qualquer leitura.
func (s *Service) FindStoreSequenceGaps(ownerID, storeID string, lo, hi int) (*domain.MissingSequenceReport, error) {
	if lo < 0 || hi < lo {
		return nil, fmt.Errorf("intervalo de sequência inválido: [%d, %d]", lo, hi)
	}

	tickets, truncated, err := s.CanonicalTickets(ownerID, repository.RecordFilter{StoreID: &storeID})
	if err != nil {
		return nil, err
	}

	if truncated {
		logrus.WithFields(logrus.Fields{
			"owner_id": ownerID,
			"store_id": storeID,
		}).Warn("Leitura truncada durante busca de sequências ausentes; relatório pode subcontar")
	}

	return FindMissingSequences(tickets, storeID, lo, hi), nil
}

func (s *Service) loadAllStreams(ownerID string, filter repository.RecordFilter) ([]*domain.RawRecord, bool, error) {
	streams := []domain.Stream{domain.StreamSale, domain.StreamReturn, domain.StreamGiftCard}

	records := make([]*domain.RawRecord, 0)
	truncated := false

	for _, stream := range streams {
		set, err := s.recordRepository.ListAllByOwner(
			ownerID,
			stream,
			filter,
			s.cfg.Metrics.PageSize,
			s.cfg.Metrics.MaxRecords,
		)
		if err != nil {
			return nil, false, fmt.Errorf("erro ao carregar registros da origem %s: %w", stream, err)
		}

		records = append(records, set.Records...)
		truncated = truncated || set.Truncated
	}

	return records, truncated, nil
}
