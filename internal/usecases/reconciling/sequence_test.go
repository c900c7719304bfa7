package reconciling

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
)

func canonicalTicketForStore(storeID string, seq int) *domain.CanonicalTicket {
	ticketNumber := fmt.Sprintf("%sT%04d", storeID, seq)
	return &domain.CanonicalTicket{
		TicketNumber:   ticketNumber,
		StoreID:        storeID,
		SaleDate:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		CanonicalTotal: decimal.NewFromInt(10),
		WinningStream:  domain.StreamSale,
	}
}

func TestFindMissingSequences(t *testing.T) {
	// Loja 001 com sequências 1..100, removendo 13, 50 e 99
	tickets := make(map[string]*domain.CanonicalTicket)
	removed := map[int]bool{13: true, 50: true, 99: true}

	for seq := 1; seq <= 100; seq++ {
		if removed[seq] {
			continue
		}
		ticket := canonicalTicketForStore("001", seq)
		tickets[ticket.TicketNumber] = ticket
	}

	report := FindMissingSequences(tickets, "001", 1, 100)

	assert.Equal(t, "001", report.StoreID)
	assert.Equal(t, 1, report.RangeStart)
	assert.Equal(t, 100, report.RangeEnd)
	assert.Equal(t, 97, report.TotalFound)
	assert.Equal(t, 3, report.MissingCount)
	assert.Equal(t, []int{13, 50, 99}, report.MissingNumbers)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, report.SampleExisting)
}

func TestFindMissingSequences_FiltraPorLoja(t *testing.T) {
	tickets := make(map[string]*domain.CanonicalTicket)

	// Loja 001 tem 1 e 3; loja 002 tem 2 — o 2 da outra loja não preenche o gap
	for _, seq := range []int{1, 3} {
		ticket := canonicalTicketForStore("001", seq)
		tickets[ticket.TicketNumber] = ticket
	}
	other := canonicalTicketForStore("002", 2)
	tickets[other.TicketNumber] = other

	report := FindMissingSequences(tickets, "001", 1, 3)

	assert.Equal(t, 2, report.TotalFound)
	assert.Equal(t, []int{2}, report.MissingNumbers)
}

func TestFindMissingSequences_LimiteDeAusentesReportados(t *testing.T) {
	report := FindMissingSequences(map[string]*domain.CanonicalTicket{}, "001", 1, 500)

	assert.Equal(t, 500, report.MissingCount)
	assert.Len(t, report.MissingNumbers, missingNumbersReportLimit)
	assert.Equal(t, 1, report.MissingNumbers[0])
	assert.Equal(t, missingNumbersReportLimit, report.MissingNumbers[missingNumbersReportLimit-1])
}

func TestFindMissingSequences_TicketSemSufixoParseavel(t *testing.T) {
	tickets := map[string]*domain.CanonicalTicket{
		"garbage": {
			TicketNumber:  "garbage",
			StoreID:       "001",
			WinningStream: domain.StreamSale,
		},
		"001T0001": canonicalTicketForStore("001", 1),
	}

	report := FindMissingSequences(tickets, "001", 1, 2)

	// O ticket não parseável fica fora do conjunto presente, sem erro
	assert.Equal(t, 1, report.TotalFound)
	assert.Equal(t, []int{2}, report.MissingNumbers)
}

func TestParseSequenceNumber(t *testing.T) {
	tests := []struct {
		name         string
		ticketNumber string
		expectedSeq  int
		expectedOK   bool
	}{
		{name: "Formato padrão", ticketNumber: "001T123456", expectedSeq: 123456, expectedOK: true},
		{name: "Sufixo de traço descartado", ticketNumber: "001T1234-1", expectedSeq: 1234, expectedOK: true},
		{name: "Sem prefixo de loja", ticketNumber: "T4567", expectedSeq: 4567, expectedOK: true},
		{name: "Somente dígitos", ticketNumber: "12345", expectedSeq: 12345, expectedOK: true},
		{name: "Sem sufixo numérico", ticketNumber: "001T", expectedOK: false},
		{name: "Sufixo não numérico", ticketNumber: "001TXYZ", expectedOK: false},
		{name: "Vazio", ticketNumber: "", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, ok := parseSequenceNumber(tt.ticketNumber)

			require.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedSeq, seq)
			}
		})
	}
}
