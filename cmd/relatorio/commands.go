package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/customer-inactivity-api/internal/config"
	"github.com/vfg2006/customer-inactivity-api/internal/domain"
	"github.com/vfg2006/customer-inactivity-api/internal/ledger"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

// app guarda as dependências compartilhadas pelos comandos
type app struct {
	analyzer analyzing.Analyzer
	loc      *time.Location
	now      func() time.Time
}

// setup carrega a configuração e monta o serviço de análise; o histórico não é gravado no terminal
func (a *app) setup() error {
	if a.now == nil {
		a.now = time.Now
	}
	if a.analyzer != nil {
		if a.loc == nil {
			a.loc = time.UTC
		}
		return nil
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	a.loc = cfg.Ledger.Location()
	a.analyzer = analyzing.NewService(ledger.NewLoaderFromConfig(cfg.Ledger), nil, a.loc)
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "relatorio",
		Short:        "Encontra clientes sem movimentação no relatório de vendas",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(cmd.ErrOrStderr())
			level := "warn"
			if verbose {
				level = "debug"
			}
			log.Configure(level)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "exibe os logs de leitura da planilha")

	root.AddCommand(
		newPreviewCmd(a),
		newAnalyzeCmd(a),
		newHashPasswordCmd(),
	)

	return root
}

func newPreviewCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "preview <arquivo> [arquivo...]",
		Short: "Mostra o resumo de cada planilha",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}

			summaries := make([]fileSummary, 0, len(args))
			for _, path := range args {
				summary, err := a.analyzer.Preview(cmd.Context(), path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				summaries = append(summaries, fileSummary{File: path, Summary: summary})
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summaries)
			}

			for _, s := range summaries {
				renderSummary(cmd.OutOrStdout(), s.File, s.Summary)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "imprime o resultado em JSON")

	return cmd
}

type analyzeOptions struct {
	filterType    string
	filterValue   string
	includeNoDate bool
	asJSON        bool
	export        string
	outputDir     string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze <arquivo> [arquivo...]",
		Short: "Lista os clientes que atendem ao filtro de inatividade",
		Example: `  relatorio analyze vendas.xlsx --type days --value 90+
  relatorio analyze vendas.xls --type days --value 30-60 --include-no-date
  relatorio analyze vendas.xlsx --type months --value 1,6,12 --json
  relatorio analyze loja1.xlsx loja2.xlsx --type custom --value "2023-01-01|2023-12-31" --export xlsx --output relatorios`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			return runAnalyze(cmd, a, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.filterType, "type", "t", "", "tipo de filtro: days, months ou custom")
	flags.StringVar(&opts.filterValue, "value", "", "valor do filtro: never, N+, MIN-MAX, 1,6,12 ou AAAA-MM-DD|AAAA-MM-DD")
	flags.BoolVar(&opts.includeNoDate, "include-no-date", false, "inclui clientes sem data de venda nos filtros por dias")
	flags.BoolVar(&opts.asJSON, "json", false, "imprime o resultado em JSON")
	flags.StringVar(&opts.export, "export", "", "grava o resultado em arquivo: csv ou xlsx")
	flags.StringVarP(&opts.outputDir, "output", "o", ".", "diretório dos arquivos exportados")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func runAnalyze(cmd *cobra.Command, a *app, opts analyzeOptions, paths []string) error {
	spec, err := analyzing.ParseFilter(opts.filterType, opts.filterValue, strconv.FormatBool(opts.includeNoDate), a.loc)
	if err != nil {
		return err
	}

	var format analyzing.ExportFormat
	if opts.export != "" {
		if format, err = analyzing.ParseExportFormat(opts.export); err != nil {
			return err
		}
		if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
			return fmt.Errorf("erro ao criar diretório de saída: %w", err)
		}
	}

	// A barra só aparece no modo texto com mais de um arquivo
	bar := progressbar.DefaultSilent(int64(len(paths)))
	if len(paths) > 1 && !opts.asJSON {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("analisando planilhas"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	reports := make([]fileReport, 0, len(paths))
	for _, path := range paths {
		result, err := a.analyzer.Analyze(cmd.Context(), path, domain.AnalysisRequest{
			FileName:    filepath.Base(path),
			FilterType:  strings.ToLower(opts.filterType),
			FilterValue: opts.filterValue,
			Spec:        spec,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		report := fileReport{File: path, Result: result}
		if format != "" {
			report.ExportedTo, err = exportResult(opts.outputDir, path, format, result, a.now())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		reports = append(reports, report)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if opts.asJSON {
		return writeJSON(cmd.OutOrStdout(), reports)
	}

	for _, r := range reports {
		renderResult(cmd.OutOrStdout(), r)
	}
	return nil
}

// exportResult grava o resultado ao lado dos demais arquivos exportados.
// O nome da planilha de origem entra no nome para não haver colisão entre arquivos.
func exportResult(dir, source string, format analyzing.ExportFormat, result *domain.FilterResult, now time.Time) (string, error) {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	target := filepath.Join(dir, base+"_"+format.FileName(now))

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("erro ao criar arquivo de exportação: %w", err)
	}

	if err := analyzing.Export(f, format, result); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("erro ao gravar arquivo de exportação: %w", err)
	}

	return target, nil
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <senha>",
		Short: "Gera o hash bcrypt para AUTH_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := authenticating.HashPassword(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}
