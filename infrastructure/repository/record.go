// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ticket-reconciler-api/infrastructure/database/postgres"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
)

const (
	SalesRecordsTable    = "sales_records"
	ReturnRecordsTable   = "return_records"
	GiftCardRecordsTable = "giftcard_records"
)

// streamTables mapeia cada origem para sua tabela e coluna de valor.
// Cada origem nomeia o campo monetário do seu jeito.
var streamTables = map[domain.Stream]struct {
	table        string
	amountColumn string
}{
	domain.StreamSale:     {table: SalesRecordsTable, amountColumn: "net_amount"},
	domain.StreamReturn:   {table: ReturnRecordsTable, amountColumn: "refund_amount"},
	domain.StreamGiftCard: {table: GiftCardRecordsTable, amountColumn: "redemption_amount"},
}

// RecordFilter restringe uma consulta de registros brutos. Start/End formam
// uma janela semiaberta [Start, End) sobre sale_date.
type RecordFilter struct {
	StoreID  *string
	SalesRep *string
	Start    *time.Time
	End      *time.Time
}

type RecordRepository interface {
	ListPage(ownerID string, stream domain.Stream, filter RecordFilter, afterID int64, limit int) ([]*domain.RawRecord, error)
	ListAllByOwner(ownerID string, stream domain.Stream, filter RecordFilter, pageSize, maxRecords int) (*domain.RecordSet, error)
	GetDigest(ownerID string, stream domain.Stream, start, end time.Time) (*domain.RecordDigest, error)
}

type recordRepository struct {
	conn *postgres.Connection
}

func NewRecordRepository(conn *postgres.Connection) RecordRepository {
	return &recordRepository{
		conn: conn,
	}
}

// ListPage retorna uma página de registros por keyset (id > afterID), sempre
// ordenada por id ascendente. A ordenação fixa é o que torna o desempate do
// canonicalizador determinístico.
func (r *recordRepository) ListPage(
	ownerID string,
	stream domain.Stream,
	filter RecordFilter,
	afterID int64,
	limit int,
) ([]*domain.RawRecord, error) {
	mapping, ok := streamTables[stream]
	if !ok {
		return nil, fmt.Errorf("origem de registros desconhecida: %s", stream)
	}

	builder := squirrel.
		Select(
			"id",
			"owner_id",
			"ticket_number",
			"store_id",
			"sale_date",
			"sales_rep",
			mapping.amountColumn,
			"created_at",
		).
		From(mapping.table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if filter.StoreID != nil {
		builder = builder.Where(squirrel.Eq{"store_id": *filter.StoreID})
	}

	if filter.SalesRep != nil {
		builder = builder.Where(squirrel.Eq{"sales_rep": *filter.SalesRep})
	}

	if filter.Start != nil {
		builder = builder.Where(squirrel.GtOrEq{"sale_date": filter.Start.Format(time.DateOnly)})
	}

	if filter.End != nil {
		builder = builder.Where(squirrel.Lt{"sale_date": filter.End.Format(time.DateOnly)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.RawRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows, stream)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// ListAllByOwner acumula páginas até esgotar os dados ou atingir maxRecords.
// Nunca faz scan ilimitado: atingir o teto marca o conjunto como truncado em
// vez de subcontar silenciosamente.
func (r *recordRepository) ListAllByOwner(
	ownerID string,
	stream domain.Stream,
	filter RecordFilter,
	pageSize, maxRecords int,
) (*domain.RecordSet, error) {
	if pageSize <= 0 || maxRecords <= 0 {
		return nil, fmt.Errorf("limites de paginação inválidos: pageSize=%d maxRecords=%d", pageSize, maxRecords)
	}

	set := &domain.RecordSet{
		Records: make([]*domain.RawRecord, 0),
	}

	var cursor int64
	for {
		remaining := maxRecords - len(set.Records)
		if remaining <= 0 {
			set.Truncated = true
			break
		}

		limit := pageSize
		if remaining < limit {
			limit = remaining
		}

		page, err := r.ListPage(ownerID, stream, filter, cursor, limit)
		if err != nil {
			return nil, err
		}

		if len(page) == 0 {
			break
		}

		set.Records = append(set.Records, page...)
		cursor = page[len(page)-1].ID

		if len(page) < limit {
			break
		}
	}

	// Teto atingido com a última página cheia: verificar se há mais dados
	if len(set.Records) == maxRecords && !set.Truncated {
		extra, err := r.ListPage(ownerID, stream, filter, cursor, 1)
		if err != nil {
			return nil, err
		}
		set.Truncated = len(extra) > 0
	}

	return set, nil
}

// GetDigest resume o conjunto de registros da janela em uma única consulta.
// É um resumo aproximado (contagem, extremos de created_at e soma) usado
// para detectar staleness sem reler todos os registros.
func (r *recordRepository) GetDigest(
	ownerID string,
	stream domain.Stream,
	start, end time.Time,
) (*domain.RecordDigest, error) {
	mapping, ok := streamTables[stream]
	if !ok {
		return nil, fmt.Errorf("origem de registros desconhecida: %s", stream)
	}

	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(MIN(created_at), 'epoch'::timestamptz)",
			"COALESCE(MAX(created_at), 'epoch'::timestamptz)",
			fmt.Sprintf("COALESCE(SUM(%s), 0)", mapping.amountColumn),
		).
		From(mapping.table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.GtOrEq{"sale_date": start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"sale_date": end.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	digest := &domain.RecordDigest{}

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&digest.Count,
		&digest.MinCreatedAt,
		&digest.MaxCreatedAt,
		&digest.TotalAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear resumo de registros: %w", err)
	}

	return digest, nil
}

func (r *recordRepository) scanRecord(rows *sql.Rows, stream domain.Stream) (*domain.RawRecord, error) {
	record := &domain.RawRecord{
		SourceStream: stream,
	}

	var salesRep sql.NullString
	var amount decimal.NullDecimal

	err := rows.Scan(
		&record.ID,
		&record.OwnerID,
		&record.TicketNumber,
		&record.StoreID,
		&record.SaleDate,
		&salesRep,
		&amount,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if salesRep.Valid {
		record.SalesRep = &salesRep.String
	}

	// Valor ausente ou malformado conta como zero, nunca erro
	if amount.Valid {
		record.Amount = amount.Decimal
	} else {
		record.Amount = decimal.Zero
	}

	return record, nil
}
