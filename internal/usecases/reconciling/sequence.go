package reconciling

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
)

const (
	// Limite de números ausentes reportados por consulta
	missingNumbersReportLimit = 100
	// Amostra de números presentes para conferência
	existingSampleLimit = 10
)

// FindMissingSequences reporta os números de sequência ausentes no intervalo
// inclusivo [lo, hi] entre os tickets canônicos de uma loja. Tickets cujo
// número não tem sufixo numérico parseável ficam fora do conjunto presente,
// sem gerar erro.
func FindMissingSequences(
	tickets map[string]*domain.CanonicalTicket,
	storeID string,
	lo, hi int,
) *domain.MissingSequenceReport {
	present := make(map[int]bool)

	for _, ticket := range tickets {
		if ticket.StoreID != storeID {
			continue
		}

		seq, ok := parseSequenceNumber(ticket.TicketNumber)
		if !ok {
			continue
		}

		present[seq] = true
	}

	missing := make([]int, 0)
	for n := lo; n <= hi; n++ {
		if !present[n] {
			missing = append(missing, n)
		}
	}

	report := &domain.MissingSequenceReport{
		StoreID:      storeID,
		RangeStart:   lo,
		RangeEnd:     hi,
		TotalFound:   len(present),
		MissingCount: len(missing),
	}

	if len(missing) > missingNumbersReportLimit {
		missing = missing[:missingNumbersReportLimit]
	}
	report.MissingNumbers = missing

	existing := make([]int, 0, len(present))
	for n := range present {
		existing = append(existing, n)
	}
	sort.Ints(existing)

	if len(existing) > existingSampleLimit {
		existing = existing[:existingSampleLimit]
	}
	report.SampleExisting = existing

	return report
}

// parseSequenceNumber extrai o sufixo numérico de sequência de um número de
// ticket. O sufixo de traço das formas alternativas é descartado antes; o
// que vem depois do último 'T' precisa ser todo numérico. Números sem 'T'
// que sejam inteiramente dígitos contam como a própria sequência.
func parseSequenceNumber(ticketNumber string) (int, bool) {
	trimmed := ticketNumber
	if idx := strings.Index(trimmed, "-"); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	if idx := strings.LastIndex(trimmed, "T"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}

	if trimmed == "" {
		return 0, false
	}

	seq, err := strconv.Atoi(trimmed)
	if err != nil || seq < 0 {
		return 0, false
	}

	return seq, true
}
