package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/parking-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/parking-revenue-api/infrastructure/repository"
	"github.com/vfg2006/parking-revenue-api/internal/api"
	"github.com/vfg2006/parking-revenue-api/internal/config"
	"github.com/vfg2006/parking-revenue-api/internal/scheduler"
	"github.com/vfg2006/parking-revenue-api/internal/usecases/authenticating"
	"github.com/vfg2006/parking-revenue-api/internal/usecases/revenue"
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	locationRepo := repository.NewLocationRepository(pgConn)
	ledgerRepo := repository.NewLedgerRepository(pgConn)
	memberRepo := repository.NewMemberRepository(pgConn)
	manualRepo := repository.NewManualRepository(pgConn)
	realtimeRepo := repository.NewRealtimeRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	revenueService := revenue.NewService(
		cfg,
		locationRepo,
		ledgerRepo,
		memberRepo,
		manualRepo,
		realtimeRepo,
	)

	retentionService := scheduler.NewRealtimeRetentionService(realtimeRepo, cfg)

	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de expurgo do log realtime")
	} else {
		logrus.Info("Agendador de expurgo do log realtime iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		revenueService,
		authenticator,
		retentionService,
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
