package domain

// ExpectedComparison compara os totais observados com valores esperados
// informados pelo chamador (ex.: totais do sistema legado).
type ExpectedComparison struct {
	ExpectedTicketCount int     `json:"expected_ticket_count"`
	ExpectedTotalAmount float64 `json:"expected_total_amount"`
	TicketCountDiff     int     `json:"ticket_count_diff"`
	TotalAmountDiff     float64 `json:"total_amount_diff"`
}

// ValidationReport é o relatório de qualidade de dados de um conjunto de
// tickets canônicos. Anomalias são sinais, nunca erros: o relatório sempre
// é produzido por completo.
type ValidationReport struct {
	ActualTicketCount      int                 `json:"actual_ticket_count"`
	ActualTotalAmount      float64             `json:"actual_total_amount"`
	ZeroTotalTicketCount   int                 `json:"zero_total_ticket_count"`
	SampleZeroTotalTickets []string            `json:"sample_zero_total_tickets"`
	PatternHistogram       map[string]int      `json:"pattern_histogram"`
	AnomalousTickets       []string            `json:"anomalous_tickets"`
	Truncated              bool                `json:"truncated,omitempty"`
	Expected               *ExpectedComparison `json:"expected,omitempty"`
}

// MissingSequenceReport lista os números de sequência ausentes de uma loja
// dentro de um intervalo numérico inclusivo [range_start, range_end].
type MissingSequenceReport struct {
	StoreID        string `json:"store_id"`
	RangeStart     int    `json:"range_start"`
	RangeEnd       int    `json:"range_end"`
	TotalFound     int    `json:"total_found"`
	MissingCount   int    `json:"missing_count"`
	MissingNumbers []int  `json:"missing_numbers"`
	SampleExisting []int  `json:"sample_existing"`
}
