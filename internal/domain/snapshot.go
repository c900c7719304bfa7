package domain

import (
	"time"
)

// CacheState representa o estado de um snapshot em relação aos dados brutos
type CacheState string

const (
	CacheStateMissing CacheState = "missing"
	CacheStateFresh   CacheState = "fresh"
	CacheStateStale   CacheState = "stale"
)

const (
	DeltaTypePositive = "positive"
	DeltaTypeNegative = "negative"
)

// MetricDelta é a variação percentual de uma métrica entre a janela atual e
// a janela anterior de mesmo comprimento. Só existe quando a baseline
// anterior é diferente de zero.
type MetricDelta struct {
	Value float64 `json:"value"`
	Type  string  `json:"type"`
}

// SnapshotDeltas agrupa as variações período-a-período. Campos nulos
// indicam baseline zero (sem delta reportável, nunca divisão por zero).
type SnapshotDeltas struct {
	Revenue      *MetricDelta `json:"revenue"`
	Transactions *MetricDelta `json:"transactions"`
	AvgTicket    *MetricDelta `json:"avg_ticket"`
}

// TrendPoint é a receita e contagem de transações de um dia da janela
type TrendPoint struct {
	Date         time.Time `json:"date"`
	Revenue      float64   `json:"revenue"`
	Transactions int       `json:"transactions"`
}

// TopProduct é um produto agregado por (item_id, nome) dentro da janela
type TopProduct struct {
	ItemID           string  `json:"item_id"`
	Name             string  `json:"name"`
	Revenue          float64 `json:"revenue"`
	Quantity         int     `json:"quantity"`
	TransactionCount int     `json:"transaction_count"`
}

// StoreStat é o agregado de uma loja dentro da janela
type StoreStat struct {
	StoreID          string  `json:"store_id"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transaction_count"`
}

// MetricsSnapshot é o resultado completo de uma agregação de métricas de
// vendas sobre uma janela [start, end). Campos monetários em float64 com
// duas casas decimais; DataHash e ComputedAt são metadados do cache e não
// participam da garantia de determinismo do agregador.
type MetricsSnapshot struct {
	WindowStart      time.Time       `json:"window_start"`
	WindowEnd        time.Time       `json:"window_end"`
	Revenue          float64         `json:"revenue"`
	TransactionCount int             `json:"transaction_count"`
	AvgTicket        float64         `json:"avg_ticket"`
	ReturnRate       float64         `json:"return_rate"`
	GiftCardSales    float64         `json:"giftcard_sales"`
	Deltas           *SnapshotDeltas `json:"deltas,omitempty"`
	Trend            []*TrendPoint   `json:"trend"`
	TopProducts      []*TopProduct   `json:"top_products"`
	StoreStats       []*StoreStat    `json:"store_stats"`
	Truncated        bool            `json:"truncated,omitempty"`
	DataHash         string          `json:"data_hash,omitempty"`
	ComputedAt       time.Time       `json:"computed_at"`
}

// SnapshotKey identifica um snapshot no cache
type SnapshotKey struct {
	OwnerID    string `json:"owner_id"`
	WindowDays int    `json:"window_days"`
}

// MetricsSnapshotEntry representa um snapshot de métricas armazenado no banco,
// chaveado por (owner_id, window_days)
type MetricsSnapshotEntry struct {
	ID         int64            `json:"id"`
	OwnerID    string           `json:"owner_id"`
	WindowDays int              `json:"window_days"`
	Snapshot   *MetricsSnapshot `json:"snapshot"`
	DataHash   string           `json:"data_hash"`
	ComputedAt time.Time        `json:"computed_at"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
