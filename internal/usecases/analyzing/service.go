package analyzing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/customer-inactivity-api/infrastructure/repository"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
	"github.com/vfg2006/customer-inactivity-api/pkg/utils"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type Service struct {
	loader  TableLoader
	history repository.AnalysisHistoryRepository
	loc     *time.Location
	now     func() time.Time
}

// Option personaliza o Service
type Option func(*Service)

// WithClock substitui o relógio usado como "hoje" nas análises
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	loader TableLoader,
	history repository.AnalysisHistoryRepository,
	loc *time.Location,
	opts ...Option,
) Analyzer {
	if loc == nil {
		loc = time.UTC
	}
	if history == nil {
		history = repository.NewNoopAnalysisHistoryRepository()
	}

	s := &Service{
		loader:  loader,
		history: history,
		loc:     loc,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Preview(ctx context.Context, path string) (*domain.LedgerSummary, error) {
	table, err := s.load(ctx, path)
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(table)
	return &summary, nil
}

func (s *Service) Analyze(ctx context.Context, path string, req domain.AnalysisRequest) (*domain.FilterResult, error) {
	start := time.Now()

	table, err := s.load(ctx, path)
	if err != nil {
		return nil, err
	}

	today := s.now().In(s.loc)

	matched, err := Apply(table, req.Spec, today)
	if err != nil {
		return nil, err
	}

	result := FormatResult(matched, Describe(req.Spec), today)

	s.record(ctx, req, table.Len(), result, time.Since(start))

	return result, nil
}

func (s *Service) History(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar histórico de análises: %w", err)
	}

	return records, nil
}

func (s *Service) load(ctx context.Context, path string) (*domain.CustomerTable, error) {
	table, err := s.loader.Load(ctx, path)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrReadLedger, err)
	}
	return table, nil
}

// record grava os metadados da análise; falhas são apenas registradas em log
func (s *Service) record(ctx context.Context, req domain.AnalysisRequest, totalRows int, result *domain.FilterResult, elapsed time.Duration) {
	logger := log.ForContext(ctx)

	id, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Warn("analyze: falha ao gerar id da análise")
		return
	}

	record := &domain.AnalysisRecord{
		ID:                id,
		FileName:          req.FileName,
		FilterType:        req.FilterType,
		FilterValue:       req.FilterValue,
		FilterDescription: result.FilterDescription,
		TotalRows:         totalRows,
		Matched:           result.Total,
		DurationMs:        elapsed.Milliseconds(),
		CreatedAt:         s.now().UTC(),
	}

	if err := s.history.Save(ctx, record); err != nil {
		logger.WithError(err).WithFields(log.Fields{
			"analysis_id": record.ID,
			"file_name":   record.FileName,
		}).Warn("analyze: falha ao registrar histórico da análise")
	}
}
