package analyzing

import (
	"context"

	"github.com/vfg2006/customer-inactivity-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_analyzer.go -package=mocks

// Analyzer define as operações sobre o relatório de vendas enviado
type Analyzer interface {
	// Preview lê a planilha e devolve o resumo dos clientes
	Preview(ctx context.Context, path string) (*domain.LedgerSummary, error)

	// Analyze aplica o filtro de inatividade e devolve os clientes selecionados
	Analyze(ctx context.Context, path string, req domain.AnalysisRequest) (*domain.FilterResult, error)

	// History lista as análises mais recentes
	History(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error)
}

// TableLoader carrega a tabela de clientes de um arquivo
type TableLoader interface {
	Load(ctx context.Context, path string) (*domain.CustomerTable, error)
}
