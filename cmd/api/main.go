package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/openpix"
	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront"
	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront/storefrontclient"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository"
	"github.com/vfg2006/engagement-manager-api/internal/api"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/scheduler"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/attendanting"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/catalog"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/checkout"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/dashboard"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/influencing"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/paging"
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

	userRepo := repository.NewUserRepository(pgConn)
	servicePackageRepo := repository.NewServicePackageRepository(pgConn)
	attendantRepo := repository.NewAttendantRepository(pgConn)
	influencerRepo := repository.NewInfluencerRepository(pgConn)
	pageRepo := repository.NewCompanyPageRepository(pgConn)
	snapshotRepo := repository.NewOrderSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	storefrontClient := storefrontclient.NewClient(cfg)
	storefrontIntegrator := storefront.New(cfg, storefrontClient)

	openPixClient := openpix.NewClient(cfg)
	paymentWatcher := checkout.NewPaymentWatcher(cfg, openPixClient)

	catalogService := catalog.NewService(servicePackageRepo)
	attendantService := attendanting.NewService(cfg, attendantRepo, snapshotRepo, storefrontIntegrator)
	influencerService := influencing.NewService(cfg, influencerRepo, snapshotRepo, storefrontIntegrator)
	pageService := paging.NewService(pageRepo)
	dashboardService := dashboard.NewService(cfg, snapshotRepo, storefrontIntegrator)
	upsellService := checkout.NewUpsellService(cfg, openPixClient, paymentWatcher)

	// Inicializa os agendadores de sincronização
	ordersSyncService := scheduler.NewOrdersSyncService(
		snapshotRepo,
		storefrontIntegrator,
		cfg,
	)

	utmMetricsSyncService := scheduler.NewUtmMetricsSyncService(
		pageRepo,
		snapshotRepo,
		cfg,
	)

	// Inicia os agendadores em background
	if err := ordersSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de pedidos")
	} else {
		logrus.Info("Agendador de snapshot de pedidos iniciado com sucesso")
	}

	if err := utmMetricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de métricas UTM")
	} else {
		logrus.Info("Agendador de métricas UTM iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		catalogService,
		attendantService,
		influencerService,
		pageService,
		dashboardService,
		upsellService,
		ordersSyncService,
		utmMetricsSyncService,
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
