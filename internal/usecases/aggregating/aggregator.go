package aggregating

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
	"github.com/vfg2006/ticket-reconciler-api/pkg/utils"
)

const topProductsLimit = 10

// Estruturas de acumulação por agrupamento
type dayAggregator struct {
	revenue      decimal.Decimal
	transactions int
}

type productAggregator struct {
	itemID   string
	name     string
	revenue  decimal.Decimal
	quantity int
	tickets  map[string]bool
}

type storeAggregator struct {
	revenue      decimal.Decimal
	transactions int
}

// Aggregate computa o snapshot de métricas da janela semiaberta [start, end).
// Função pura dos insumos: entradas idênticas produzem campos idênticos
// (exceto os metadados DataHash/ComputedAt, preenchidos pela camada de cache).
//
// Devoluções e resgates brutos entram além dos tickets canônicos porque
// alimentam return_rate e giftcard_sales mesmo quando o total canônico do
// ticket veio da origem de venda.
func Aggregate(
	tickets map[string]*domain.CanonicalTicket,
	returns []*domain.RawRecord,
	giftCards []*domain.RawRecord,
	lineItems []*domain.SaleLineItem,
	start, end time.Time,
) *domain.MetricsSnapshot {
	snapshot := &domain.MetricsSnapshot{
		WindowStart: start,
		WindowEnd:   end,
	}

	revenue := decimal.Zero
	transactionCount := 0

	days := make(map[string]*dayAggregator)
	stores := make(map[string]*storeAggregator)

	for _, ticket := range tickets {
		if !inWindow(ticket.SaleDate, start, end) {
			continue
		}

		revenue = revenue.Add(ticket.CanonicalTotal)
		transactionCount++

		day := utils.TruncateToDay(ticket.SaleDate)
		dayKey := day.Format(time.DateOnly)
		dayAgg, exists := days[dayKey]
		if !exists {
			dayAgg = &dayAggregator{revenue: decimal.Zero}
			days[dayKey] = dayAgg
		}
		dayAgg.revenue = dayAgg.revenue.Add(ticket.CanonicalTotal)
		dayAgg.transactions++

		storeAgg, exists := stores[ticket.StoreID]
		if !exists {
			storeAgg = &storeAggregator{revenue: decimal.Zero}
			stores[ticket.StoreID] = storeAgg
		}
		storeAgg.revenue = storeAgg.revenue.Add(ticket.CanonicalTotal)
		storeAgg.transactions++
	}

	snapshot.Revenue = roundedFloat(revenue)
	snapshot.TransactionCount = transactionCount

	if transactionCount > 0 {
		avgTicket := revenue.Div(decimal.NewFromInt(int64(transactionCount)))
		snapshot.AvgTicket = roundedFloat(avgTicket)
	}

	returnTotal := sumInWindow(returns, start, end)
	if revenue.IsPositive() {
		rate := returnTotal.Div(revenue).Mul(decimal.NewFromInt(100))
		snapshot.ReturnRate = roundedFloat(rate)
	}

	snapshot.GiftCardSales = roundedFloat(sumInWindow(giftCards, start, end))

	snapshot.Trend = buildTrend(days)
	snapshot.TopProducts = buildTopProducts(lineItems, start, end)
	snapshot.StoreStats = buildStoreStats(stores)

	return snapshot
}

// buildTrend converte os acumuladores diários em pontos ordenados por data
func buildTrend(days map[string]*dayAggregator) []*domain.TrendPoint {
	dayKeys := make([]string, 0, len(days))
	for dayKey := range days {
		dayKeys = append(dayKeys, dayKey)
	}
	sort.Strings(dayKeys)

	trend := make([]*domain.TrendPoint, 0, len(dayKeys))
	for _, dayKey := range dayKeys {
		date, _ := time.Parse(time.DateOnly, dayKey)
		trend = append(trend, &domain.TrendPoint{
			Date:         date,
			Revenue:      roundedFloat(days[dayKey].revenue),
			Transactions: days[dayKey].transactions,
		})
	}

	return trend
}

// buildTopProducts agrupa itens de linha por (item_id, nome), ordena por
// receita decrescente (empate por item_id para manter o resultado
// determinístico) e trunca no top 10
func buildTopProducts(lineItems []*domain.SaleLineItem, start, end time.Time) []*domain.TopProduct {
	products := make(map[string]*productAggregator)

	for _, item := range lineItems {
		if !inWindow(item.SaleDate, start, end) {
			continue
		}

		key := item.ItemID + "\x00" + item.ItemName
		product, exists := products[key]
		if !exists {
			product = &productAggregator{
				itemID:  item.ItemID,
				name:    item.ItemName,
				revenue: decimal.Zero,
				tickets: make(map[string]bool),
			}
			products[key] = product
		}

		product.revenue = product.revenue.Add(item.LineAmount)
		product.quantity += item.Quantity
		product.tickets[item.TicketNumber] = true
	}

	topProducts := make([]*domain.TopProduct, 0, len(products))
	for _, product := range products {
		topProducts = append(topProducts, &domain.TopProduct{
			ItemID:           product.itemID,
			Name:             product.name,
			Revenue:          roundedFloat(product.revenue),
			Quantity:         product.quantity,
			TransactionCount: len(product.tickets),
		})
	}

	sort.Slice(topProducts, func(i, j int) bool {
		if topProducts[i].Revenue != topProducts[j].Revenue {
			return topProducts[i].Revenue > topProducts[j].Revenue
		}
		return topProducts[i].ItemID < topProducts[j].ItemID
	})

	if len(topProducts) > topProductsLimit {
		topProducts = topProducts[:topProductsLimit]
	}

	return topProducts
}

// buildStoreStats ordena o agregado por loja por receita decrescente,
// empate por store_id
func buildStoreStats(stores map[string]*storeAggregator) []*domain.StoreStat {
	storeStats := make([]*domain.StoreStat, 0, len(stores))
	for storeID, store := range stores {
		storeStats = append(storeStats, &domain.StoreStat{
			StoreID:          storeID,
			Revenue:          roundedFloat(store.revenue),
			TransactionCount: store.transactions,
		})
	}

	sort.Slice(storeStats, func(i, j int) bool {
		if storeStats[i].Revenue != storeStats[j].Revenue {
			return storeStats[i].Revenue > storeStats[j].Revenue
		}
		return storeStats[i].StoreID < storeStats[j].StoreID
	})

	return storeStats
}

func sumInWindow(records []*domain.RawRecord, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		if inWindow(record.SaleDate, start, end) {
			total = total.Add(record.Amount)
		}
	}
	return total
}

// inWindow testa a janela semiaberta [start, end)
func inWindow(date time.Time, start, end time.Time) bool {
	return !date.Before(start) && date.Before(end)
}

func roundedFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
