package aggregating

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/reconciling"
)

var (
	windowStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
)

func record(id int64, ticketNumber string, amount float64, stream domain.Stream, saleDate time.Time) *domain.RawRecord {
	return &domain.RawRecord{
		ID:           id,
		OwnerID:      "OWN001",
		TicketNumber: ticketNumber,
		StoreID:      "001",
		SaleDate:     saleDate,
		Amount:       decimal.NewFromFloat(amount),
		SourceStream: stream,
	}
}

func lineItem(ticketNumber, itemID, itemName string, quantity int, lineAmount float64, saleDate time.Time) *domain.SaleLineItem {
	return &domain.SaleLineItem{
		OwnerID:      "OWN001",
		TicketNumber: ticketNumber,
		StoreID:      "001",
		SaleDate:     saleDate,
		ItemID:       itemID,
		ItemName:     itemName,
		Quantity:     quantity,
		LineAmount:   decimal.NewFromFloat(lineAmount),
	}
}

// Cenário de ponta a ponta: o ticket T001 tem venda e devolução (a venda
// vence), o T002 só tem resgates de vale (somados). Receita 50+25=75,
// duas transações, ticket médio 37.50.
func TestAggregate_CenarioCompleto(t *testing.T) {
	saleDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	records := []*domain.RawRecord{
		record(1, "001T0001", 50.00, domain.StreamSale, saleDate),
		record(2, "001T0001", 10.00, domain.StreamReturn, saleDate),
		record(3, "001T0002", 15.00, domain.StreamGiftCard, saleDate),
		record(4, "001T0002", 10.00, domain.StreamGiftCard, saleDate),
	}

	tickets := reconciling.Canonicalize(records)
	returns := []*domain.RawRecord{records[1]}
	giftCards := []*domain.RawRecord{records[2], records[3]}

	snapshot := Aggregate(tickets, returns, giftCards, nil, windowStart, windowEnd)

	assert.Equal(t, 75.00, snapshot.Revenue)
	assert.Equal(t, 2, snapshot.TransactionCount)
	assert.Equal(t, 37.50, snapshot.AvgTicket)

	// Devoluções brutas: 10 sobre receita 75 → 13.33%
	assert.Equal(t, 13.33, snapshot.ReturnRate)
	assert.Equal(t, 25.00, snapshot.GiftCardSales)

	require.Len(t, snapshot.Trend, 1)
	assert.Equal(t, 75.00, snapshot.Trend[0].Revenue)
	assert.Equal(t, 2, snapshot.Trend[0].Transactions)

	require.Len(t, snapshot.StoreStats, 1)
	assert.Equal(t, "001", snapshot.StoreStats[0].StoreID)
	assert.Equal(t, 75.00, snapshot.StoreStats[0].Revenue)
}

func TestAggregate_JanelaSemiaberta(t *testing.T) {
	// Ticket exatamente no início entra; exatamente no fim fica fora
	records := []*domain.RawRecord{
		record(1, "001T0001", 10.00, domain.StreamSale, windowStart),
		record(2, "001T0002", 20.00, domain.StreamSale, windowEnd),
		record(3, "001T0003", 30.00, domain.StreamSale, windowStart.AddDate(0, 0, -1)),
	}

	snapshot := Aggregate(reconciling.Canonicalize(records), nil, nil, nil, windowStart, windowEnd)

	assert.Equal(t, 10.00, snapshot.Revenue)
	assert.Equal(t, 1, snapshot.TransactionCount)
}

func TestAggregate_JanelaVazia(t *testing.T) {
	snapshot := Aggregate(map[string]*domain.CanonicalTicket{}, nil, nil, nil, windowStart, windowEnd)

	assert.Equal(t, 0.0, snapshot.Revenue)
	assert.Equal(t, 0, snapshot.TransactionCount)
	assert.Equal(t, 0.0, snapshot.AvgTicket, "ticket médio sem transações é zero, nunca divisão por zero")
	assert.Equal(t, 0.0, snapshot.ReturnRate, "taxa de devolução sem receita é zero")
	assert.Empty(t, snapshot.Trend)
	assert.Empty(t, snapshot.TopProducts)
	assert.Empty(t, snapshot.StoreStats)
}

func TestAggregate_TendenciaOrdenadaPorData(t *testing.T) {
	records := []*domain.RawRecord{
		record(1, "001T0001", 10.00, domain.StreamSale, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)),
		record(2, "001T0002", 20.00, domain.StreamSale, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		record(3, "001T0003", 30.00, domain.StreamSale, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)),
	}

	snapshot := Aggregate(reconciling.Canonicalize(records), nil, nil, nil, windowStart, windowEnd)

	require.Len(t, snapshot.Trend, 3)
	assert.Equal(t, 5, snapshot.Trend[0].Date.Day())
	assert.Equal(t, 12, snapshot.Trend[1].Date.Day())
	assert.Equal(t, 20, snapshot.Trend[2].Date.Day())
}

func TestAggregate_TopProdutos(t *testing.T) {
	saleDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Agrupa por item, ordena por receita e trunca no top 10", func(t *testing.T) {
		lineItems := make([]*domain.SaleLineItem, 0)
		for i := 1; i <= 12; i++ {
			itemID := fmt.Sprintf("ITEM%03d", i)
			lineItems = append(lineItems, lineItem("001T0001", itemID, "Produto "+itemID, 1, float64(i)*10, saleDate))
		}

		snapshot := Aggregate(map[string]*domain.CanonicalTicket{}, nil, nil, lineItems, windowStart, windowEnd)

		require.Len(t, snapshot.TopProducts, topProductsLimit)
		assert.Equal(t, "ITEM012", snapshot.TopProducts[0].ItemID)
		assert.Equal(t, 120.00, snapshot.TopProducts[0].Revenue)
		assert.Equal(t, "ITEM003", snapshot.TopProducts[topProductsLimit-1].ItemID)
	})

	t.Run("Linhas do mesmo item acumulam quantidade e transações distintas", func(t *testing.T) {
		lineItems := []*domain.SaleLineItem{
			lineItem("001T0001", "ITEM001", "Produto A", 2, 20.00, saleDate),
			lineItem("001T0002", "ITEM001", "Produto A", 1, 10.00, saleDate),
			lineItem("001T0002", "ITEM001", "Produto A", 3, 30.00, saleDate),
		}

		snapshot := Aggregate(map[string]*domain.CanonicalTicket{}, nil, nil, lineItems, windowStart, windowEnd)

		require.Len(t, snapshot.TopProducts, 1)
		product := snapshot.TopProducts[0]
		assert.Equal(t, 60.00, product.Revenue)
		assert.Equal(t, 6, product.Quantity)
		assert.Equal(t, 2, product.TransactionCount, "transações contam tickets distintos")
	})

	t.Run("Empate de receita resolve por item_id", func(t *testing.T) {
		lineItems := []*domain.SaleLineItem{
			lineItem("001T0001", "ITEM002", "Produto B", 1, 50.00, saleDate),
			lineItem("001T0001", "ITEM001", "Produto A", 1, 50.00, saleDate),
		}

		snapshot := Aggregate(map[string]*domain.CanonicalTicket{}, nil, nil, lineItems, windowStart, windowEnd)

		require.Len(t, snapshot.TopProducts, 2)
		assert.Equal(t, "ITEM001", snapshot.TopProducts[0].ItemID)
		assert.Equal(t, "ITEM002", snapshot.TopProducts[1].ItemID)
	})
}

func TestAggregate_EstatisticasPorLoja(t *testing.T) {
	saleDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	storeA := record(1, "001T0001", 30.00, domain.StreamSale, saleDate)
	storeA.StoreID = "001"
	storeB := record(2, "002T0001", 80.00, domain.StreamSale, saleDate)
	storeB.StoreID = "002"

	snapshot := Aggregate(reconciling.Canonicalize([]*domain.RawRecord{storeA, storeB}), nil, nil, nil, windowStart, windowEnd)

	require.Len(t, snapshot.StoreStats, 2)
	assert.Equal(t, "002", snapshot.StoreStats[0].StoreID, "lojas ordenadas por receita decrescente")
	assert.Equal(t, 80.00, snapshot.StoreStats[0].Revenue)
	assert.Equal(t, "001", snapshot.StoreStats[1].StoreID)
}

func TestAggregate_Determinismo(t *testing.T) {
	saleDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	records := []*domain.RawRecord{
		record(1, "001T0001", 50.00, domain.StreamSale, saleDate),
		record(2, "001T0002", 25.00, domain.StreamGiftCard, saleDate),
	}
	lineItems := []*domain.SaleLineItem{
		lineItem("001T0001", "ITEM001", "Produto A", 1, 50.00, saleDate),
	}

	first := Aggregate(reconciling.Canonicalize(records), nil, nil, lineItems, windowStart, windowEnd)
	second := Aggregate(reconciling.Canonicalize(records), nil, nil, lineItems, windowStart, windowEnd)

	assert.Equal(t, first, second, "mesmas entradas devem produzir o mesmo snapshot")
}
