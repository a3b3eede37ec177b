package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

// UtmMetricsSyncConfig representa a configuração do agendador de métricas UTM
type UtmMetricsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// UtmMetricsSyncService recalcula as métricas de conversão e receita dos
// links UTM a partir do snapshot de pedidos.
type UtmMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              UtmMetricsSyncConfig
	appConfig           *config.Config
	pageRepo            repository.CompanyPageRepository
	snapshotRepo        repository.OrderSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewUtmMetricsSyncService cria uma nova instância do serviço de métricas UTM
func NewUtmMetricsSyncService(
	pageRepo repository.CompanyPageRepository,
	snapshotRepo repository.OrderSnapshotRepository,
	appConfig *config.Config,
) *UtmMetricsSyncService {
	syncConfig := UtmMetricsSyncConfig{
		CronSchedule: appConfig.UtmMetricsSync.CronSchedule,
		SyncEnabled:  appConfig.UtmMetricsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas UTM carregada")

	return &UtmMetricsSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		pageRepo:     pageRepo,
		snapshotRepo: snapshotRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *UtmMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas UTM desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de métricas UTM")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncUtmMetrics()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas UTM: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de métricas UTM")
		s.scheduler.Stop()
	}()

	return nil
}

// syncUtmMetrics percorre todos os links UTM cadastrados e recalcula
// conversões e receita a partir do snapshot de pedidos
func (s *UtmMetricsSyncService) syncUtmMetrics() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas UTM já em andamento, ignorando")
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

	logrus.Info("Iniciando recálculo de métricas UTM")

	pages, err := s.pageRepo.ListPages()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar páginas para recálculo de métricas UTM")
		return
	}

	linksProcessed := 0

	for _, page := range pages {
		links, err := s.pageRepo.ListUtmLinks(page.ID)
		if err != nil {
			logrus.WithError(err).WithField("page_id", page.ID).Error("Erro ao listar links UTM da página")
			continue
		}

		for _, link := range links {
			metrics, err := s.computeLinkMetrics(link)
			if err != nil {
				logrus.WithError(err).WithField("link_id", link.ID).Error("Erro ao calcular métricas do link UTM")
				continue
			}

			if err := s.pageRepo.UpdateUtmMetrics(link.ID, metrics); err != nil {
				logrus.WithError(err).WithField("link_id", link.ID).Error("Erro ao gravar métricas do link UTM")
				continue
			}

			linksProcessed++
		}
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"links_processed": linksProcessed,
		"duration":        time.Since(startTime).String(),
	}).Info("Recálculo de métricas UTM concluído")
}

// computeLinkMetrics deriva conversões e receita do link a partir dos
// pedidos atribuídos à sua campanha. Clicks vem do storefront e é
// preservado.
func (s *UtmMetricsSyncService) computeLinkMetrics(link *domain.UtmLink) (domain.UtmMetrics, error) {
	orders, err := s.snapshotRepo.ListByPeriod(domain.OrderFilters{
		UTMCampaign: link.UtmCampaign,
	})
	if err != nil {
		return domain.UtmMetrics{}, err
	}

	metrics := domain.UtmMetrics{
		Clicks: link.Metrics.Clicks,
	}

	for _, order := range orders {
		if order.Status != domain.OrderStatusApproved {
			continue
		}

		metrics.Conversions++
		if order.AmountCents > 0 {
			metrics.RevenueCents += order.AmountCents
		}
	}

	return metrics, nil
}

// TriggerManualSync inicia manualmente um recálculo de métricas UTM
func (s *UtmMetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de métricas UTM já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de métricas UTM")
	go s.syncUtmMetrics()
}

// GetStatus retorna o status atual do agendador
func (s *UtmMetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
