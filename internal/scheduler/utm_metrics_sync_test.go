package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestComputeLinkMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)

	service := &UtmMetricsSyncService{
		snapshotRepo: snapshotRepo,
	}

	link := &domain.UtmLink{
		ID:          "link-1",
		UtmCampaign: "promo-jan",
		Metrics:     domain.UtmMetrics{Clicks: 340},
	}

	snapshotRepo.EXPECT().
		ListByPeriod(gomock.Any()).
		DoAndReturn(func(filters domain.OrderFilters) ([]domain.Order, error) {
			assert.Equal(t, "promo-jan", filters.UTMCampaign)
			return []domain.Order{
				{ID: "ord-1", AmountCents: 1000, Status: domain.OrderStatusApproved},
				{ID: "ord-2", AmountCents: 2000, Status: domain.OrderStatusApproved},
				// Pedido pendente não conta como conversão
				{ID: "ord-3", AmountCents: 5000, Status: domain.OrderStatusPending},
				// Valor inválido conta como conversão de valor zero
				{ID: "ord-4", AmountCents: -100, Status: domain.OrderStatusApproved},
			}, nil
		})

	metrics, err := service.computeLinkMetrics(link)
	require.NoError(t, err)

	// Clicks preservado do storefront
	assert.Equal(t, 340, metrics.Clicks)
	assert.Equal(t, 3, metrics.Conversions)
	assert.Equal(t, int64(3000), metrics.RevenueCents)
}

func TestSyncUtmMetrics_PercorreTodasAsPaginas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pageRepo := mocks.NewMockCompanyPageRepository(ctrl)
	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)

	service := &UtmMetricsSyncService{
		pageRepo:     pageRepo,
		snapshotRepo: snapshotRepo,
	}

	pageRepo.EXPECT().
		ListPages().
		Return([]*domain.CompanyPage{
			{ID: "page-1"},
			{ID: "page-2"},
		}, nil)

	pageRepo.EXPECT().
		ListUtmLinks("page-1").
		Return([]*domain.UtmLink{{ID: "link-1", UtmCampaign: "c1"}}, nil)
	pageRepo.EXPECT().
		ListUtmLinks("page-2").
		Return([]*domain.UtmLink{{ID: "link-2", UtmCampaign: "c2"}}, nil)

	snapshotRepo.EXPECT().
		ListByPeriod(gomock.Any()).
		Return(nil, nil).
		Times(2)

	pageRepo.EXPECT().UpdateUtmMetrics("link-1", gomock.Any()).Return(nil)
	pageRepo.EXPECT().UpdateUtmMetrics("link-2", gomock.Any()).Return(nil)

	service.syncUtmMetrics()

	assert.False(t, service.lastSyncCompletedAt.IsZero())
}
