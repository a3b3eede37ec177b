package influencing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storefrontmocks "github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront/mocks"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/engagement-manager-api/internal/config"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetSales_AtribuicaoPorUtmCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	influencerRepo := mocks.NewMockInfluencerRepository(ctrl)
	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)

	influencerRepo.EXPECT().
		GetByID("inf-1").
		Return(&domain.Influencer{ID: "inf-1", UID: "ju2024", Name: "Julia", Percentage: 15}, nil)

	snapshotRepo.EXPECT().
		ListByPeriod(gomock.Any()).
		DoAndReturn(func(filters domain.OrderFilters) ([]domain.Order, error) {
			// Atribuição via UID do influenciador no utm_campaign
			assert.Equal(t, "ju2024", filters.UTMCampaign)
			return []domain.Order{
				{ID: "ord-1", AmountCents: 10000, Status: domain.OrderStatusApproved, UTMCampaign: "ju2024"},
			}, nil
		})

	service := NewService(&config.Config{}, influencerRepo, snapshotRepo, nil)

	sales, err := service.GetSales(context.Background(), "inf-1", domain.SalesFilters{})
	require.NoError(t, err)

	assert.Equal(t, int64(10000), sales.Summary.TotalRevenueCents)
	assert.Equal(t, int64(1500), sales.Summary.CommissionCents)
}

func TestGetSales_SnapshotVazioFiltraStorefrontLocalmente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	influencerRepo := mocks.NewMockInfluencerRepository(ctrl)
	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)
	storefrontIntg := storefrontmocks.NewMockStorefrontIntegrator(ctrl)

	influencerRepo.EXPECT().
		GetByID("inf-1").
		Return(&domain.Influencer{ID: "inf-1", UID: "ju2024", Percentage: 10}, nil)

	snapshotRepo.EXPECT().
		ListByPeriod(gomock.Any()).
		Return(nil, nil)

	// O storefront devolve pedidos de outras campanhas junto; o filtro
	// local mantém só os do influenciador
	storefrontIntg.EXPECT().
		GetOrders(gomock.Any(), gomock.Any()).
		Return([]domain.Order{
			{ID: "ord-1", AmountCents: 1000, Status: domain.OrderStatusApproved, UTMCampaign: "ju2024"},
			{ID: "ord-2", AmountCents: 9000, Status: domain.OrderStatusApproved, UTMCampaign: "outra"},
			{ID: "ord-3", AmountCents: 500, Status: domain.OrderStatusApproved},
		}, 3, nil)

	service := NewService(&config.Config{}, influencerRepo, snapshotRepo, storefrontIntg)

	sales, err := service.GetSales(context.Background(), "inf-1", domain.SalesFilters{})
	require.NoError(t, err)

	require.Len(t, sales.Orders, 1)
	assert.Equal(t, "ord-1", sales.Orders[0].ID)
	assert.Equal(t, int64(1000), sales.Summary.TotalRevenueCents)
}

func TestCreateInfluencer_GeraUIDQuandoAusente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	influencerRepo := mocks.NewMockInfluencerRepository(ctrl)
	influencerRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(influencer *domain.Influencer) error {
			assert.NotEmpty(t, influencer.ID)
			assert.NotEmpty(t, influencer.UID)
			return nil
		})

	service := NewService(&config.Config{}, influencerRepo, nil, nil)

	created, err := service.CreateInfluencer(&domain.Influencer{Name: "Julia", Email: "julia@example.com", Percentage: 15})
	require.NoError(t, err)
	assert.NotEmpty(t, created.UID)
}

func TestUpdateInfluencer_InexistenteRetornaErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	influencerRepo := mocks.NewMockInfluencerRepository(ctrl)
	influencerRepo.EXPECT().GetByID("nao-existe").Return(nil, nil)

	service := NewService(&config.Config{}, influencerRepo, nil, nil)

	err := service.UpdateInfluencer(&domain.UpdateInfluencerRequest{ID: "nao-existe"})
	assert.ErrorIs(t, err, ErrInfluencerNotFound)
}
