package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CanonicalTicket é a resolução única e autoritativa de um ticket_number
// entre as três origens de registros. Para cada ticket_number observado em
// qualquer origem existe exatamente um CanonicalTicket, e WinningStream
// segue a regra de precedência Sale > Return > GiftCard.
//
// Derivado e recomputado por consulta; nunca persistido isoladamente.
type CanonicalTicket struct {
	TicketNumber   string          `json:"ticket_number"`
	StoreID        string          `json:"store_id"`
	SaleDate       time.Time       `json:"sale_date"`
	SalesRep       *string         `json:"sales_rep,omitempty"`
	CanonicalTotal decimal.Decimal `json:"canonical_total"`
	WinningStream  Stream          `json:"winning_stream"`
}
