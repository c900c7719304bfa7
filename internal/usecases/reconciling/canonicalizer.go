package reconciling

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
)

// Canonicalize resolve os registros das três origens em um mapeamento
// ticket_number → CanonicalTicket. Função pura: mesma entrada, mesmo mapa.
//
// Regra de precedência (registros de venda são autoritativos quando
// presentes, porque devoluções e vales podem referenciar um ticket sem
// nunca atribuir-lhe um total primário):
//  1. Presente na origem Sale: total canônico é o valor do registro de
//     venda com menor id interno para aquele ticket — desempate explícito,
//     independente da ordem de chegada das linhas.
//  2. Senão, presente na origem Return: mesmo desempate, valor da devolução.
//  3. Senão, somente GiftCard: total canônico é a SOMA de todos os resgates
//     do ticket (vales podem lançar múltiplas linhas sob um ticket).
//
// Valores ausentes/malformados já chegam como zero do repositório.
func Canonicalize(records []*domain.RawRecord) map[string]*domain.CanonicalTicket {
	saleWinners := make(map[string]*domain.RawRecord)
	returnWinners := make(map[string]*domain.RawRecord)
	giftCardFirst := make(map[string]*domain.RawRecord)
	giftCardTotals := make(map[string]decimal.Decimal)

	for _, record := range records {
		if record == nil || record.TicketNumber == "" {
			continue
		}

		switch record.SourceStream {
		case domain.StreamSale:
			keepLowestID(saleWinners, record)
		case domain.StreamReturn:
			keepLowestID(returnWinners, record)
		case domain.StreamGiftCard:
			keepLowestID(giftCardFirst, record)
			giftCardTotals[record.TicketNumber] = giftCardTotals[record.TicketNumber].Add(record.Amount)
		}
	}

	tickets := make(map[string]*domain.CanonicalTicket)

	for ticketNumber, record := range saleWinners {
		tickets[ticketNumber] = canonicalFromRecord(record, record.Amount, domain.StreamSale)
	}

	for ticketNumber, record := range returnWinners {
		if _, exists := tickets[ticketNumber]; exists {
			continue
		}
		tickets[ticketNumber] = canonicalFromRecord(record, record.Amount, domain.StreamReturn)
	}

	for ticketNumber, record := range giftCardFirst {
		if _, exists := tickets[ticketNumber]; exists {
			continue
		}
		tickets[ticketNumber] = canonicalFromRecord(record, giftCardTotals[ticketNumber], domain.StreamGiftCard)
	}

	return tickets
}

// keepLowestID guarda o registro de menor id interno por ticket_number.
// Linhas duplicadas da mesma origem são ignoradas depois da vencedora.
func keepLowestID(winners map[string]*domain.RawRecord, record *domain.RawRecord) {
	current, exists := winners[record.TicketNumber]
	if !exists || record.ID < current.ID {
		winners[record.TicketNumber] = record
	}
}

func canonicalFromRecord(record *domain.RawRecord, total decimal.Decimal, stream domain.Stream) *domain.CanonicalTicket {
	return &domain.CanonicalTicket{
		TicketNumber:   record.TicketNumber,
		StoreID:        record.StoreID,
		SaleDate:       record.SaleDate,
		SalesRep:       record.SalesRep,
		CanonicalTotal: total,
		WinningStream:  stream,
	}
}
