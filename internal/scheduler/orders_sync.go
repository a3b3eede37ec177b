package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

// OrdersSyncConfig representa a configuração do agendador de snapshot de pedidos
type OrdersSyncConfig struct {
	CronSchedule string
	LookbackDays int
	PageSize     int
	SyncEnabled  bool
}

// OrdersSyncService sincroniza o snapshot local de pedidos com o storefront.
// O snapshot alimenta o painel e os relatórios sem bater no backend a cada
// requisição.
type OrdersSyncService struct {
	scheduler           *gocron.Scheduler
	config              OrdersSyncConfig
	appConfig           *config.Config
	snapshotRepo        repository.OrderSnapshotRepository
	storefrontIntg      storefront.StorefrontIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewOrdersSyncService cria uma nova instância do serviço de sincronização de pedidos
func NewOrdersSyncService(
	snapshotRepo repository.OrderSnapshotRepository,
	storefrontIntg storefront.StorefrontIntegrator,
	appConfig *config.Config,
) *OrdersSyncService {
	syncConfig := OrdersSyncConfig{
		CronSchedule: appConfig.OrdersSync.CronSchedule,
		LookbackDays: appConfig.OrdersSync.LookbackDays,
		PageSize:     appConfig.OrdersSync.PageSize,
		SyncEnabled:  appConfig.OrdersSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"page_size":     syncConfig.PageSize,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshot de pedidos carregada")

	return &OrdersSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		snapshotRepo:   snapshotRepo,
		storefrontIntg: storefrontIntg,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *OrdersSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshot de pedidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshot de pedidos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncOrders()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de pedidos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshot de pedidos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncOrders busca os pedidos recentes do storefront página a página e
// grava no snapshot local
func (s *OrdersSyncService) syncOrders() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startDate := time.Now().AddDate(0, 0, -s.config.LookbackDays)
	endDate := time.Now()

	logrus.WithFields(logrus.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Info("Iniciando sincronização do snapshot de pedidos")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	totalSynced := 0
	page := 1

	for {
		orders, total, err := s.storefrontIntg.GetOrders(ctx, domain.OrderFilters{
			StartDate: &startDate,
			EndDate:   &endDate,
			Page:      page,
			Limit:     s.config.PageSize,
		})
		if err != nil {
			logrus.WithError(err).WithField("page", page).Error("Erro ao buscar pedidos do storefront")
			return
		}

		if len(orders) == 0 {
			break
		}

		if err := s.snapshotRepo.SaveOrUpdate(orders); err != nil {
			logrus.WithError(err).WithField("page", page).Error("Erro ao gravar snapshot de pedidos")
			return
		}

		totalSynced += len(orders)

		if totalSynced >= total || len(orders) < s.config.PageSize {
			break
		}

		page++
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"total_synced": totalSynced,
		"duration":     time.Since(startTime).String(),
	}).Info("Sincronização do snapshot de pedidos concluída")
}

// TriggerManualSync inicia manualmente uma sincronização de pedidos
func (s *OrdersSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do snapshot de pedidos")
	go s.syncOrders()
}

// GetStatus retorna o status atual do agendador
func (s *OrdersSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_page_size":         s.config.PageSize,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
