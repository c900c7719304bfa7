package aggregating

import (
	"time"

	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
)

// Aggregator computa métricas de vendas sobre uma janela
type Aggregator interface {
	ComputeWindowSnapshot(ownerID string, start, end time.Time) (*domain.MetricsSnapshot, error)
}

// CachedAggregator adiciona o contrato de cache por (owner, comprimento de
// janela): leitura fresca retorna o snapshot armazenado sem reagregar;
// qualquer outro estado recomputa de forma síncrona e sobrescreve.
type CachedAggregator interface {
	Aggregator
	GetMetrics(ownerID string, windowDays int) (*domain.MetricsSnapshotEntry, domain.CacheState, error)
}
