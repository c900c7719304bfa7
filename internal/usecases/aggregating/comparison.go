package aggregating

import (
	"time"

	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
	"github.com/vfg2006/ticket-reconciler-api/pkg/utils"
)

// PreviousWindow deriva a janela imediatamente anterior com o mesmo
// comprimento: para [start, end) de comprimento L, retorna [start−L, start)
func PreviousWindow(start, end time.Time) (time.Time, time.Time) {
	length := end.Sub(start)
	return start.Add(-length), start
}

// ComputeDeltas calcula as variações percentuais entre o snapshot atual e o
// da janela anterior. Baseline zero produz delta nulo — nunca divisão por
// zero, nunca delta contra período inexistente.
func ComputeDeltas(current, previous *domain.MetricsSnapshot) *domain.SnapshotDeltas {
	if current == nil || previous == nil {
		return nil
	}

	return &domain.SnapshotDeltas{
		Revenue:      metricDelta(current.Revenue, previous.Revenue),
		Transactions: metricDelta(float64(current.TransactionCount), float64(previous.TransactionCount)),
		AvgTicket:    metricDelta(current.AvgTicket, previous.AvgTicket),
	}
}

// metricDelta retorna a variação percentual arredondada a uma casa decimal,
// ou nil quando a baseline é zero. Zero conta como não-negativo.
func metricDelta(current, previous float64) *domain.MetricDelta {
	if previous == 0 {
		return nil
	}

	value := utils.RoundWithOneDecimalPlace((current - previous) / previous * 100)

	deltaType := domain.DeltaTypePositive
	if value < 0 {
		deltaType = domain.DeltaTypeNegative
	}

	return &domain.MetricDelta{
		Value: value,
		Type:  deltaType,
	}
}
