package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stream identifica a origem de um registro bruto de ponto de venda
type Stream string

const (
	StreamSale     Stream = "sale"
	StreamReturn   Stream = "return"
	StreamGiftCard Stream = "giftcard"
)

// RawRecord representa um registro bruto de ponto de venda de uma das três
// origens (vendas, devoluções, resgates de vale-presente). Registros são
// imutáveis após a ingestão; o motor apenas lê.
type RawRecord struct {
	ID           int64           `json:"id"`
	OwnerID      string          `json:"owner_id"`
	TicketNumber string          `json:"ticket_number"`
	StoreID      string          `json:"store_id"`
	SaleDate     time.Time       `json:"sale_date"`
	SalesRep     *string         `json:"sales_rep,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	SourceStream Stream          `json:"source_stream"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RecordSet é o resultado de uma leitura paginada de registros brutos.
// Truncated indica que o limite máximo de leitura foi atingido antes do
// fim dos dados e o resultado está incompleto.
type RecordSet struct {
	Records   []*RawRecord `json:"records"`
	Truncated bool         `json:"truncated"`
}

// RecordDigest resume o conjunto de registros que contribui para uma janela.
// É um resumo aproximado (contagem + extremos + soma), não um hash de
// conteúdo completo — suficiente para detectar staleness de snapshots.
type RecordDigest struct {
	Count        int64
	MinCreatedAt time.Time
	MaxCreatedAt time.Time
	TotalAmount  decimal.Decimal
}

// SaleLineItem é a atribuição por linha de produto de um ticket de venda,
// usada para o cálculo de top produtos.
type SaleLineItem struct {
	ID           int64           `json:"id"`
	OwnerID      string          `json:"owner_id"`
	TicketNumber string          `json:"ticket_number"`
	StoreID      string          `json:"store_id"`
	SaleDate     time.Time       `json:"sale_date"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	Quantity     int             `json:"quantity"`
	LineAmount   decimal.Decimal `json:"line_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// LineItemSet é o resultado de uma leitura paginada de itens de linha.
type LineItemSet struct {
	Items     []*SaleLineItem `json:"items"`
	Truncated bool            `json:"truncated"`
}
