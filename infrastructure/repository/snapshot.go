package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ticket-reconciler-api/infrastructure/database/postgres"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
)

const (
	metricsSnapshotsTable = "metrics_snapshots ms"
)

type SnapshotRepository interface {
	GetByOwnerAndWindow(ownerID string, windowDays int) (*domain.MetricsSnapshotEntry, error)
	SaveOrUpdate(entry *domain.MetricsSnapshotEntry) error
	ListKeys() ([]*domain.SnapshotKey, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) GetByOwnerAndWindow(ownerID string, windowDays int) (*domain.MetricsSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.owner_id, ms.window_days, ms.metrics, ms.data_hash, ms.computed_at, ms.created_at, ms.updated_at").
		From(metricsSnapshotsTable).
		Where(squirrel.Eq{"ms.owner_id": ownerID, "ms.window_days": windowDays}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return entry, nil
}

// SaveOrUpdate substitui o snapshot da chave em uma única escrita atômica.
// Escritas concorrentes para a mesma chave resolvem por last-write-wins.
func (r *snapshotRepository) SaveOrUpdate(entry *domain.MetricsSnapshotEntry) error {
	var metricsJSON []byte
	var err error

	if entry.Snapshot != nil {
		metricsJSON, err = json.Marshal(entry.Snapshot)
		if err != nil {
			return fmt.Errorf("erro ao serializar MetricsSnapshot para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("metrics_snapshots").
		Columns("owner_id", "window_days", "metrics", "data_hash", "computed_at").
		Values(
			entry.OwnerID,
			entry.WindowDays,
			metricsJSON,
			entry.DataHash,
			entry.ComputedAt,
		).
		Suffix(`
			ON CONFLICT (owner_id, window_days) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				data_hash = EXCLUDED.data_hash,
				computed_at = EXCLUDED.computed_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListKeys retorna todas as chaves (owner_id, window_days) com snapshot
// armazenado, para a varredura de refresh do agendador
func (r *snapshotRepository) ListKeys() ([]*domain.SnapshotKey, error) {
	query, args, err := squirrel.
		Select("ms.owner_id", "ms.window_days").
		From(metricsSnapshotsTable).
		OrderBy("ms.owner_id ASC", "ms.window_days ASC").
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

	keys := make([]*domain.SnapshotKey, 0)
	for rows.Next() {
		key := &domain.SnapshotKey{}
		if err := rows.Scan(&key.OwnerID, &key.WindowDays); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave de snapshot: %w", err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keys, nil
}

func (r *snapshotRepository) scanEntry(row *sql.Row) (*domain.MetricsSnapshotEntry, error) {
	entry := &domain.MetricsSnapshotEntry{}
	var metricsJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.OwnerID,
		&entry.WindowDays,
		&metricsJSON,
		&entry.DataHash,
		&entry.ComputedAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		snapshot := &domain.MetricsSnapshot{}
		if err := json.Unmarshal(metricsJSON, snapshot); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
		entry.Snapshot = snapshot
	}

	return entry, nil
}
