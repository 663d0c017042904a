package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-inactivity-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-inactivity-api/infrastructure/repository"
	"github.com/vfg2006/customer-inactivity-api/infrastructure/storage"
	"github.com/vfg2006/customer-inactivity-api/internal/api"
	"github.com/vfg2006/customer-inactivity-api/internal/config"
	"github.com/vfg2006/customer-inactivity-api/internal/ledger"
	"github.com/vfg2006/customer-inactivity-api/internal/scheduler"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-inactivity-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer-inactivity-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	history := repository.NewNoopAnalysisHistoryRepository()
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		history = repository.NewAnalysisHistoryRepository(pgConn)
	} else {
		logrus.Info("Histórico de análises desabilitado (DATABASE_ENABLED=false)")
	}

	uploads, err := storage.NewUploadStore(cfg.Upload.Dir, cfg.Upload.AllowedExtensions)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar diretório de upload")
	}

	analyzer := analyzing.NewService(
		ledger.NewLoaderFromConfig(cfg.Ledger),
		history,
		cfg.Ledger.Location(),
	)

	authenticator := authenticating.NewService(cfg)
	if authenticator.Enabled() {
		logrus.WithField("user_name", cfg.Auth.Username).Info("Autenticação habilitada")
	}

	uploadCleanupService := scheduler.NewUploadCleanupService(uploads.Dir(), cfg)
	if err := uploadCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de uploads")
	} else {
		logrus.Info("Agendador de limpeza de uploads iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		uploads,
		authenticator,
		uploadCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria a conexão com o banco e garante a tabela do histórico
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar tabela do histórico de análises")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
