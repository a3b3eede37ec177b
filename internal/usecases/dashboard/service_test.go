package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storefrontmocks "github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront/mocks"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetSummary_UsaSnapshotSincronizado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)
	storefrontIntg := storefrontmocks.NewMockStorefrontIntegrator(ctrl)

	lastSync := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	snapshotRepo.EXPECT().LastSyncedAt().Return(&lastSync, nil)
	snapshotRepo.EXPECT().
		ListByPeriod(gomock.Any()).
		Return([]domain.Order{
			{ID: "ord-1", AmountCents: 1000, Status: domain.OrderStatusApproved, CreatedAt: lastSync},
			{ID: "ord-2", AmountCents: 2000, Status: domain.OrderStatusCancelled, CreatedAt: lastSync},
		}, nil)

	service := NewService(&config.Config{}, snapshotRepo, storefrontIntg)

	resp, err := service.GetSummary(context.Background(), SummaryRequest{})
	require.NoError(t, err)

	assert.Equal(t, "snapshot", resp.Source)
	require.NotNil(t, resp.LastSyncedAt)
	assert.Equal(t, lastSync, *resp.LastSyncedAt)
	assert.Equal(t, 2, resp.Summary.TotalOrders)
	assert.Equal(t, int64(3000), resp.Summary.TotalRevenueCents)

	// Todos os baldes de status presentes, inclusive N/A zerado
	require.Len(t, resp.Summary.StatusBreakdown, 4)
	assert.Equal(t, domain.OrderStatusUnknown, resp.Summary.StatusBreakdown[3].Status)
	assert.Equal(t, 0, resp.Summary.StatusBreakdown[3].Count)
}

func TestGetSummary_SemSincronizacaoConsultaStorefront(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)
	storefrontIntg := storefrontmocks.NewMockStorefrontIntegrator(ctrl)

	snapshotRepo.EXPECT().LastSyncedAt().Return(nil, nil)
	storefrontIntg.EXPECT().
		GetOrders(gomock.Any(), gomock.Any()).
		Return([]domain.Order{
			{ID: "ord-1", AmountCents: 500, Status: domain.OrderStatusApproved},
		}, 1, nil)

	service := NewService(&config.Config{}, snapshotRepo, storefrontIntg)

	resp, err := service.GetSummary(context.Background(), SummaryRequest{})
	require.NoError(t, err)

	assert.Equal(t, "storefront", resp.Source)
	assert.Nil(t, resp.LastSyncedAt)
	assert.Equal(t, 1, resp.Summary.TotalOrders)
}

func TestGetSummary_SemPedidosResumoZerado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)

	lastSync := time.Now()
	snapshotRepo.EXPECT().LastSyncedAt().Return(&lastSync, nil)
	snapshotRepo.EXPECT().ListByPeriod(gomock.Any()).Return(nil, nil)

	service := NewService(&config.Config{}, snapshotRepo, nil)

	resp, err := service.GetSummary(context.Background(), SummaryRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Summary.TotalOrders)
	assert.Equal(t, int64(0), resp.Summary.TotalRevenueCents)
	assert.Equal(t, int64(0), resp.Summary.AverageTicketCents)
	require.Len(t, resp.Summary.StatusBreakdown, 4)
	for _, bucket := range resp.Summary.StatusBreakdown {
		assert.Equal(t, 0, bucket.Count)
		assert.Equal(t, 0.0, bucket.Percentage)
	}
}

func TestGetSummary_GranularidadePadraoDia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)

	lastSync := time.Now()
	createdAt := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	snapshotRepo.EXPECT().LastSyncedAt().Return(&lastSync, nil)
	snapshotRepo.EXPECT().
		ListByPeriod(gomock.Any()).
		Return([]domain.Order{
			{ID: "ord-1", AmountCents: 100, Status: domain.OrderStatusApproved, CreatedAt: createdAt},
		}, nil)

	service := NewService(&config.Config{}, snapshotRepo, nil)

	resp, err := service.GetSummary(context.Background(), SummaryRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Summary.Series, 1)
	assert.Equal(t, "2024-01-10", resp.Summary.Series[0].Key)
}
