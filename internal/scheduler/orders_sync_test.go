package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	storefrontmocks "github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront/mocks"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSyncOrders_PaginaAteOFimDoTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)
	storefrontIntg := storefrontmocks.NewMockStorefrontIntegrator(ctrl)

	service := &OrdersSyncService{
		config: OrdersSyncConfig{
			LookbackDays: 7,
			PageSize:     2,
		},
		snapshotRepo:   snapshotRepo,
		storefrontIntg: storefrontIntg,
	}

	pageOne := []domain.Order{{ID: "ord-1"}, {ID: "ord-2"}}
	pageTwo := []domain.Order{{ID: "ord-3"}}

	gomock.InOrder(
		storefrontIntg.EXPECT().
			GetOrders(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters domain.OrderFilters) ([]domain.Order, int, error) {
				assert.Equal(t, 1, filters.Page)
				assert.Equal(t, 2, filters.Limit)
				assert.NotNil(t, filters.StartDate)
				return pageOne, 3, nil
			}),
		storefrontIntg.EXPECT().
			GetOrders(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters domain.OrderFilters) ([]domain.Order, int, error) {
				assert.Equal(t, 2, filters.Page)
				return pageTwo, 3, nil
			}),
	)

	snapshotRepo.EXPECT().SaveOrUpdate(pageOne).Return(nil)
	snapshotRepo.EXPECT().SaveOrUpdate(pageTwo).Return(nil)

	service.syncOrders()

	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSyncOrders_ParaNaPaginaVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)
	storefrontIntg := storefrontmocks.NewMockStorefrontIntegrator(ctrl)

	service := &OrdersSyncService{
		config: OrdersSyncConfig{
			LookbackDays: 7,
			PageSize:     50,
		},
		snapshotRepo:   snapshotRepo,
		storefrontIntg: storefrontIntg,
	}

	storefrontIntg.EXPECT().
		GetOrders(gomock.Any(), gomock.Any()).
		Return(nil, 0, nil)

	service.syncOrders()

	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestGetStatus_LeituraConcorrenteComSincronizacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)
	storefrontIntg := storefrontmocks.NewMockStorefrontIntegrator(ctrl)

	service := &OrdersSyncService{
		config: OrdersSyncConfig{
			LookbackDays: 7,
			PageSize:     50,
		},
		snapshotRepo:   snapshotRepo,
		storefrontIntg: storefrontIntg,
	}

	storefrontIntg.EXPECT().
		GetOrders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.OrderFilters) ([]domain.Order, int, error) {
			// Leitura de status no meio da sincronização, como faz o
			// endpoint administrativo.
			service.GetStatus()
			return []domain.Order{{ID: "ord-1"}}, 1, nil
		})
	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.syncOrders()
	}()

	for {
		select {
		case <-done:
			status := service.GetStatus()
			assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			return
		default:
			service.GetStatus()
		}
	}
}

func TestSyncOrders_NaoRodaConcorrente(t *testing.T) {
	service := &OrdersSyncService{
		config:      OrdersSyncConfig{PageSize: 10},
		syncRunning: true,
	}

	// Com uma sincronização em andamento, a chamada retorna sem consultar o
	// storefront (nenhuma expectativa registrada nos mocks).
	service.syncOrders()

	assert.True(t, service.lastSyncCompletedAt.IsZero())
}
