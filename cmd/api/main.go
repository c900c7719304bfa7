package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-reconciler-api/infrastructure/database/postgres"
	"github.com/vfg2006/ticket-reconciler-api/infrastructure/repository"
	"github.com/vfg2006/ticket-reconciler-api/internal/api"
	"github.com/vfg2006/ticket-reconciler-api/internal/config"
	"github.com/vfg2006/ticket-reconciler-api/internal/scheduler"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/aggregating"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/backfilling"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/reconciling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	recordRepo := repository.NewRecordRepository(pgConn)
	lineItemRepo := repository.NewLineItemRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	backfillRepo := repository.NewBackfillRepository(pgConn)

	reconcilingService := reconciling.NewService(cfg, recordRepo)

	// Inicializa o serviço de agregação com suporte a cache
	aggregatingService := aggregating.NewService(cfg, recordRepo, lineItemRepo).WithCache(snapshotRepo)

	backfillService := backfilling.NewService(cfg, backfillRepo)

	// Inicializa o agendador de atualização de snapshots
	snapshotRefreshService := scheduler.NewSnapshotRefreshService(
		snapshotRepo,
		aggregatingService,
		cfg,
	)

	// Inicia o agendador em background
	if err := snapshotRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de snapshots")
	} else {
		logrus.Info("Agendador de atualização de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		aggregatingService,
		reconcilingService,
		backfillService,
		snapshotRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
