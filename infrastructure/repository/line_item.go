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

const saleLineItemsTable = "sale_line_items"

type LineItemRepository interface {
	ListPage(ownerID string, start, end time.Time, afterID int64, limit int) ([]*domain.SaleLineItem, error)
	ListAllByOwner(ownerID string, start, end time.Time, pageSize, maxRecords int) (*domain.LineItemSet, error)
}

type lineItemRepository struct {
	conn *postgres.Connection
}

func NewLineItemRepository(conn *postgres.Connection) LineItemRepository {
	return &lineItemRepository{
		conn: conn,
	}
}

func (r *lineItemRepository) ListPage(
	ownerID string,
	start, end time.Time,
	afterID int64,
	limit int,
) ([]*domain.SaleLineItem, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"owner_id",
			"ticket_number",
			"store_id",
			"sale_date",
			"item_id",
			"item_name",
			"quantity",
			"line_amount",
			"created_at",
		).
		From(saleLineItemsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.GtOrEq{"sale_date": start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"sale_date": end.Format(time.DateOnly)}).
		Where(squirrel.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	items := make([]*domain.SaleLineItem, 0)
	for rows.Next() {
		item, err := r.scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item de linha: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

// ListAllByOwner acumula páginas até esgotar os dados ou atingir maxRecords,
// com a mesma política de truncamento explícito das consultas de registros
func (r *lineItemRepository) ListAllByOwner(
	ownerID string,
	start, end time.Time,
	pageSize, maxRecords int,
) (*domain.LineItemSet, error) {
	if pageSize <= 0 || maxRecords <= 0 {
		return nil, fmt.Errorf("limites de paginação inválidos: pageSize=%d maxRecords=%d", pageSize, maxRecords)
	}

	set := &domain.LineItemSet{
		Items: make([]*domain.SaleLineItem, 0),
	}

	var cursor int64
	for {
		remaining := maxRecords - len(set.Items)
		if remaining <= 0 {
			set.Truncated = true
			break
		}

		limit := pageSize
		if remaining < limit {
			limit = remaining
		}

		page, err := r.ListPage(ownerID, start, end, cursor, limit)
		if err != nil {
			return nil, err
		}

		if len(page) == 0 {
			break
		}

		set.Items = append(set.Items, page...)
		cursor = page[len(page)-1].ID

		if len(page) < limit {
			break
		}
	}

	if len(set.Items) == maxRecords && !set.Truncated {
		extra, err := r.ListPage(ownerID, start, end, cursor, 1)
		if err != nil {
			return nil, err
		}
		set.Truncated = len(extra) > 0
	}

	return set, nil
}

func (r *lineItemRepository) scanLineItem(rows *sql.Rows) (*domain.SaleLineItem, error) {
	item := &domain.SaleLineItem{}

	var amount decimal.NullDecimal

	err := rows.Scan(
		&item.ID,
		&item.OwnerID,
		&item.TicketNumber,
		&item.StoreID,
		&item.SaleDate,
		&item.ItemID,
		&item.ItemName,
		&item.Quantity,
		&amount,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if amount.Valid {
		item.LineAmount = amount.Decimal
	} else {
		item.LineAmount = decimal.Zero
	}

	return item, nil
}
