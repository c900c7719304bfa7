package reconciling

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
)

func saleRecord(id int64, ticketNumber string, amount float64) *domain.RawRecord {
	return rawRecord(id, ticketNumber, amount, domain.StreamSale)
}

func returnRecord(id int64, ticketNumber string, amount float64) *domain.RawRecord {
	return rawRecord(id, ticketNumber, amount, domain.StreamReturn)
}

func giftCardRecord(id int64, ticketNumber string, amount float64) *domain.RawRecord {
	return rawRecord(id, ticketNumber, amount, domain.StreamGiftCard)
}

func rawRecord(id int64, ticketNumber string, amount float64, stream domain.Stream) *domain.RawRecord {
	return &domain.RawRecord{
		ID:           id,
		OwnerID:      "OWN001",
		TicketNumber: ticketNumber,
		StoreID:      "001",
		SaleDate:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromFloat(amount),
		SourceStream: stream,
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		records  []*domain.RawRecord
		validate func(t *testing.T, tickets map[string]*domain.CanonicalTicket)
	}{
		{
			name: "Venda tem precedência sobre devolução e vale para o mesmo ticket",
			records: []*domain.RawRecord{
				returnRecord(1, "001T1001", 10.00),
				giftCardRecord(2, "001T1001", 5.00),
				saleRecord(3, "001T1001", 50.00),
			},
			validate: func(t *testing.T, tickets map[string]*domain.CanonicalTicket) {
				require.Len(t, tickets, 1)
				ticket := tickets["001T1001"]
				require.NotNil(t, ticket)
				assert.Equal(t, domain.StreamSale, ticket.WinningStream)
				assert.True(t, ticket.CanonicalTotal.Equal(decimal.NewFromFloat(50.00)))
			},
		},
		{
			name: "Devolução tem precedência sobre vale quando não há venda",
			records: []*domain.RawRecord{
				giftCardRecord(1, "001T1002", 5.00),
				returnRecord(2, "001T1002", 12.00),
			},
			validate: func(t *testing.T, tickets map[string]*domain.CanonicalTicket) {
				require.Len(t, tickets, 1)
				ticket := tickets["001T1002"]
				require.NotNil(t, ticket)
				assert.Equal(t, domain.StreamReturn, ticket.WinningStream)
				assert.True(t, ticket.CanonicalTotal.Equal(decimal.NewFromFloat(12.00)))
			},
		},
		{
			name: "Ticket somente de vale soma todos os resgates",
			records: []*domain.RawRecord{
				giftCardRecord(1, "001T1003", 10.00),
				giftCardRecord(2, "001T1003", 15.00),
			},
			validate: func(t *testing.T, tickets map[string]*domain.CanonicalTicket) {
				require.Len(t, tickets, 1)
				ticket := tickets["001T1003"]
				require.NotNil(t, ticket)
				assert.Equal(t, domain.StreamGiftCard, ticket.WinningStream)
				assert.True(t, ticket.CanonicalTotal.Equal(decimal.NewFromFloat(25.00)))
			},
		},
		{
			name: "Vendas duplicadas resolvem pelo menor id interno independente da ordem",
			records: []*domain.RawRecord{
				saleRecord(7, "001T1004", 99.00),
				saleRecord(3, "001T1004", 40.00),
				saleRecord(5, "001T1004", 60.00),
			},
			validate: func(t *testing.T, tickets map[string]*domain.CanonicalTicket) {
				require.Len(t, tickets, 1)
				ticket := tickets["001T1004"]
				require.NotNil(t, ticket)
				assert.True(t, ticket.CanonicalTotal.Equal(decimal.NewFromFloat(40.00)),
					"total canônico deve vir do registro de menor id")
			},
		},
		{
			name: "Cada número de ticket produz exatamente um ticket canônico",
			records: []*domain.RawRecord{
				saleRecord(1, "001T1001", 50.00),
				saleRecord(2, "001T1001", 50.00),
				returnRecord(3, "001T1001", 10.00),
				saleRecord(4, "001T1005", 30.00),
				giftCardRecord(5, "001T1006", 20.00),
			},
			validate: func(t *testing.T, tickets map[string]*domain.CanonicalTicket) {
				assert.Len(t, tickets, 3)
			},
		},
		{
			name: "Registros nulos ou sem número de ticket são ignorados",
			records: []*domain.RawRecord{
				nil,
				saleRecord(1, "", 10.00),
				saleRecord(2, "001T1007", 70.00),
			},
			validate: func(t *testing.T, tickets map[string]*domain.CanonicalTicket) {
				assert.Len(t, tickets, 1)
				assert.NotNil(t, tickets["001T1007"])
			},
		},
		{
			name:    "Entrada vazia produz mapa vazio",
			records: []*domain.RawRecord{},
			validate: func(t *testing.T, tickets map[string]*domain.CanonicalTicket) {
				assert.Empty(t, tickets)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Canonicalize(tt.records))
		})
	}
}

func TestCanonicalize_Idempotencia(t *testing.T) {
	records := []*domain.RawRecord{
		saleRecord(1, "001T1001", 50.00),
		returnRecord(2, "001T1001", 10.00),
		giftCardRecord(3, "001T1002", 25.00),
		giftCardRecord(4, "001T1002", 5.00),
		returnRecord(5, "002T2001", 8.00),
	}

	first := Canonicalize(records)
	second := Canonicalize(records)

	assert.True(t, reflect.DeepEqual(first, second),
		"duas execuções sobre a mesma entrada devem produzir o mesmo mapa")
}

func TestCanonicalize_MetadadosDoRegistroVencedor(t *testing.T) {
	rep := "Maria"
	record := saleRecord(1, "001T1001", 50.00)
	record.SalesRep = &rep
	record.StoreID = "042"

	tickets := Canonicalize([]*domain.RawRecord{record})

	ticket := tickets["001T1001"]
	assert.Equal(t, "042", ticket.StoreID)
	assert.Equal(t, record.SaleDate, ticket.SaleDate)
	assert.Equal(t, &rep, ticket.SalesRep)
}
