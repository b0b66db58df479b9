package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reporting-api/infrastructure/dataset"
	"github.com/vfg2006/sales-reporting-api/infrastructure/repository"
	"github.com/vfg2006/sales-reporting-api/internal/api"
	"github.com/vfg2006/sales-reporting-api/internal/config"
	"github.com/vfg2006/sales-reporting-api/internal/datastore"
	"github.com/vfg2006/sales-reporting-api/internal/scheduler"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/extracting"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/interpreting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := datasetSource(ctx, cfg)

	// Carga inicial do dataset: falha aqui é fatal, o serviço não atende
	// consultas sem dados.
	store, err := datastore.New(ctx, source)
	if err != nil {
		logrus.WithError(err).Fatal("Erro na carga inicial do dataset de vendas")
	}

	extractor := extracting.NewService(extracting.DefaultCatalog())
	aggregator := aggregating.NewService()
	interpreter := interpreting.NewService(extractor, aggregator)

	reloadService := scheduler.NewDatasetReloadService(store, cfg)
	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	}

	server, err := api.New(cfg, interpreter, aggregator, store, reloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// datasetSource monta a origem do dataset conforme a configuração.
func datasetSource(ctx context.Context, cfg *config.Config) dataset.Source {
	switch cfg.Dataset.Source {
	case "csv":
		return dataset.NewCSVSource(cfg.Dataset.Path)
	case "excel":
		return dataset.NewExcelSource(cfg.Dataset.Path)
	case "postgres":
		conn := pgconn(ctx, cfg.Database)
		return dataset.NewPostgresSource(repository.NewSalesRepository(conn))
	default:
		logrus.Fatalf("Origem de dataset desconhecida: %s", cfg.Dataset.Source)
		return nil
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
