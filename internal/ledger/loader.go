package ledger

import (
	"context"
	"time"

	"github.com/vfg2006/customer-inactivity-api/internal/config"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

// Loader combina leitura, localização do cabeçalho e extração
type Loader struct {
	reader      SheetReader
	extractor   *Extractor
	schema      Schema
	searchLimit int
}

func NewLoader(reader SheetReader, schema Schema, loc *time.Location, searchLimit int) *Loader {
	if searchLimit <= 0 {
		searchLimit = DefaultHeaderSearchLimit
	}

	return &Loader{
		reader:      reader,
		extractor:   NewExtractor(schema, NewDateNormalizer(loc)),
		schema:      schema,
		searchLimit: searchLimit,
	}
}

// NewLoaderFromConfig monta o Loader com o leitor de arquivos e as colunas configuradas
func NewLoaderFromConfig(cfg config.Ledger) *Loader {
	loc := cfg.Location()
	schema := Schema{
		Code:     cfg.CodeColumn,
		Name:     cfg.NameColumn,
		LastSale: cfg.LastSaleColumn,
		Total:    cfg.TotalColumn,
	}.WithDefaults()

	return NewLoader(NewFileReader(loc), schema, loc, cfg.HeaderSearchLimit)
}

// Load lê o arquivo e devolve a tabela de clientes. Quando o cabeçalho não é encontrado,
// a primeira linha é usada como cabeçalho e o resultado tende a não ter as colunas conhecidas.
func (l *Loader) Load(ctx context.Context, path string) (*domain.CustomerTable, error) {
	logger := log.ForContext(ctx)

	rows, err := l.reader.ReadRows(path)
	if err != nil {
		return nil, err
	}

	headerRow, found := LocateHeader(rows, l.schema, l.searchLimit)
	if !found {
		logger.WithFields(log.Fields{
			"ledger_rows":        len(rows),
			"ledger_suggestions": SuggestHeaders(rows, l.schema, l.searchLimit),
		}).Warn("ledger: cabeçalho não encontrado, usando a primeira linha")
	}

	table := l.extractor.Extract(rows, headerRow)

	logger.WithFields(log.Fields{
		"ledger_header_row": headerRow,
		"ledger_customers":  table.Len(),
	}).Debug("ledger: planilha carregada")

	return table, nil
}
