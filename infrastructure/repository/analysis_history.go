package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/customer-inactivity-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
)

//go:generate mockgen -source=analysis_history.go -destination=mocks/mock_analysis_history.go -package=mocks

const analysisHistoryTable = "analysis_history"

var analysisHistoryColumns = []string{
	"id",
	"file_name",
	"filter_type",
	"filter_value",
	"filter_description",
	"total_rows",
	"matched",
	"duration_ms",
	"created_at",
}

type AnalysisHistoryRepository interface {
	Save(ctx context.Context, record *domain.AnalysisRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error)
}

type analysisHistoryRepository struct {
	conn *postgres.Connection
}

func NewAnalysisHistoryRepository(conn *postgres.Connection) AnalysisHistoryRepository {
	return &analysisHistoryRepository{
		conn: conn,
	}
}

func (r *analysisHistoryRepository) Save(ctx context.Context, record *domain.AnalysisRecord) error {
	if record == nil {
		return errors.New("registro de análise vazio")
	}

	query, args, err := squirrel.
		Insert(analysisHistoryTable).
		Columns(analysisHistoryColumns...).
		Values(
			record.ID,
			record.FileName,
			record.FilterType,
			record.FilterValue,
			record.FilterDescription,
			record.TotalRows,
			record.Matched,
			record.DurationMs,
			record.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *analysisHistoryRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error) {
	query, args, err := squirrel.
		Select(analysisHistoryColumns...).
		From(analysisHistoryTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.AnalysisRecord{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.AnalysisRecord, 0)
	for rows.Next() {
		record := &domain.AnalysisRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.FileName,
			&record.FilterType,
			&record.FilterValue,
			&record.FilterDescription,
			&record.TotalRows,
			&record.Matched,
			&record.DurationMs,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// noopAnalysisHistoryRepository é usado quando o banco de dados está desabilitado
type noopAnalysisHistoryRepository struct{}

func NewNoopAnalysisHistoryRepository() AnalysisHistoryRepository {
	return noopAnalysisHistoryRepository{}
}

func (noopAnalysisHistoryRepository) Save(context.Context, *domain.AnalysisRecord) error {
	return nil
}

func (noopAnalysisHistoryRepository) ListRecent(context.Context, int) ([]*domain.AnalysisRecord, error) {
	return []*domain.AnalysisRecord{}, nil
}
