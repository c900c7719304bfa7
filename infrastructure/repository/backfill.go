package repository

import (
	"fmt"

	"github.com/vfg2006/ticket-reconciler-api/infrastructure/database/postgres"
)

// BackfillTables são as tabelas elegíveis para o backfill de owner_id.
// A lista é fechada: nomes de tabela nunca vêm do chamador.
var BackfillTables = []string{
	SalesRecordsTable,
	ReturnRecordsTable,
	GiftCardRecordsTable,
	saleLineItemsTable,
}

type BackfillRepository interface {
	TagMissingOwner(table string, ownerID string, batchSize int) (int64, error)
	CountMissingOwner(table string) (int64, error)
}

type backfillRepository struct {
	conn *postgres.Connection
}

func NewBackfillRepository(conn *postgres.Connection) BackfillRepository {
	return &backfillRepository{
		conn: conn,
	}
}

// TagMissingOwner marca um lote limitado de registros sem owner_id.
// O predicado "owner_id IS NULL" é idempotente: relançar após falha parcial
// nunca reprocessa linhas já marcadas.
func (r *backfillRepository) TagMissingOwner(table string, ownerID string, batchSize int) (int64, error) {
	if !isBackfillTable(table) {
		return 0, fmt.Errorf("tabela não elegível para backfill: %s", table)
	}

	if batchSize <= 0 {
		return 0, fmt.Errorf("tamanho de lote inválido: %d", batchSize)
	}

	// squirrel não expressa UPDATE ... WHERE id IN (subquery LIMIT n);
	// o nome da tabela vem da lista fechada acima
	query := fmt.Sprintf(`
		UPDATE %s SET owner_id = $1
		WHERE id IN (
			SELECT id FROM %s WHERE owner_id IS NULL ORDER BY id ASC LIMIT $2
		)
	`, table, table)

	result, err := r.conn.Exec(query, ownerID, batchSize)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query de backfill: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// CountMissingOwner conta os registros ainda sem owner_id na tabela
func (r *backfillRepository) CountMissingOwner(table string) (int64, error) {
	if !isBackfillTable(table) {
		return 0, fmt.Errorf("tabela não elegível para backfill: %s", table)
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE owner_id IS NULL`, table)

	var count int64
	row := r.conn.QueryRow(query)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros pendentes: %w", err)
	}

	return count, nil
}

func isBackfillTable(table string) bool {
	for _, allowed := range BackfillTables {
		if table == allowed {
			return true
		}
	}
	return false
}
