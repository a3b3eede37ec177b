package attendanting

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

func TestGetSales_UsaSnapshotQuandoDisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendantRepo := mocks.NewMockAttendantRepository(ctrl)
	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)
	storefrontIntg := storefrontmocks.NewMockStorefrontIntegrator(ctrl)

	attendantRepo.EXPECT().
		GetByID("att-1").
		Return(&domain.Attendant{ID: "att-1", Name: "Maria", Percentage: 10}, nil)

	snapshotRepo.EXPECT().
		ListByPeriod(gomock.Any()).
		Return([]domain.Order{
			{ID: "ord-1", AmountCents: 10000, Status: domain.OrderStatusApproved, AttendantID: "att-1"},
			{ID: "ord-2", AmountCents: 5000, Status: domain.OrderStatusPending, AttendantID: "att-1"},
		}, nil)

	service := NewService(&config.Config{}, attendantRepo, snapshotRepo, storefrontIntg)

	sales, err := service.GetSales(context.Background(), "att-1", domain.SalesFilters{})
	require.NoError(t, err)

	assert.Equal(t, 2, sales.Summary.TotalOrders)
	assert.Equal(t, int64(15000), sales.Summary.TotalRevenueCents)
	// Comissão de 10% sobre a receita bruta
	assert.Equal(t, int64(1500), sales.Summary.CommissionCents)
	assert.Len(t, sales.Orders, 2)
}

func TestGetSales_SnapshotVazioCaiParaStorefront(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendantRepo := mocks.NewMockAttendantRepository(ctrl)
	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)
	storefrontIntg := storefrontmocks.NewMockStorefrontIntegrator(ctrl)

	attendantRepo.EXPECT().
		GetByID("att-1").
		Return(&domain.Attendant{ID: "att-1", Name: "Maria", Percentage: 20}, nil)

	snapshotRepo.EXPECT().
		ListByPeriod(gomock.Any()).
		Return([]domain.Order{}, nil)

	storefrontIntg.EXPECT().
		GetAttendantSales(gomock.Any(), "att-1", gomock.Any()).
		Return([]domain.Order{
			{ID: "ord-9", AmountCents: 2000, Status: domain.OrderStatusApproved, AttendantID: "att-1"},
		}, nil)

	service := NewService(&config.Config{}, attendantRepo, snapshotRepo, storefrontIntg)

	sales, err := service.GetSales(context.Background(), "att-1", domain.SalesFilters{})
	require.NoError(t, err)

	assert.Equal(t, 1, sales.Summary.TotalOrders)
	assert.Equal(t, int64(400), sales.Summary.CommissionCents)
}

func TestGetSales_AtendenteInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendantRepo := mocks.NewMockAttendantRepository(ctrl)

	attendantRepo.EXPECT().
		GetByID("nao-existe").
		Return(nil, nil)

	service := NewService(&config.Config{}, attendantRepo, nil, nil)

	_, err := service.GetSales(context.Background(), "nao-existe", domain.SalesFilters{})
	assert.ErrorIs(t, err, ErrAttendantNotFound)
}

func TestGetSales_PassaPeriodoParaOSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendantRepo := mocks.NewMockAttendantRepository(ctrl)
	snapshotRepo := mocks.NewMockOrderSnapshotRepository(ctrl)

	attendantRepo.EXPECT().
		GetByID("att-1").
		Return(&domain.Attendant{ID: "att-1", Percentage: 5}, nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	snapshotRepo.EXPECT().
		ListByPeriod(gomock.Any()).
		DoAndReturn(func(filters domain.OrderFilters) ([]domain.Order, error) {
			assert.Equal(t, "att-1", filters.AttendantID)
			require.NotNil(t, filters.StartDate)
			require.NotNil(t, filters.EndDate)
			assert.Equal(t, start, *filters.StartDate)
			assert.Equal(t, end, *filters.EndDate)
			return []domain.Order{{ID: "ord-1", AmountCents: 100, Status: domain.OrderStatusApproved}}, nil
		})

	service := NewService(&config.Config{}, attendantRepo, snapshotRepo, nil)

	_, err := service.GetSales(context.Background(), "att-1", domain.SalesFilters{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
}

func TestCreateAttendant_Validacoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendantRepo := mocks.NewMockAttendantRepository(ctrl)
	service := NewService(&config.Config{}, attendantRepo, nil, nil)

	tests := []struct {
		name      string
		attendant *domain.Attendant
	}{
		{
			name:      "Sem nome",
			attendant: &domain.Attendant{Email: "maria@example.com"},
		},
		{
			name:      "Sem email",
			attendant: &domain.Attendant{Name: "Maria"},
		},
		{
			name:      "Percentual acima de 100",
			attendant: &domain.Attendant{Name: "Maria", Email: "maria@example.com", Percentage: 120},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateAttendant(tt.attendant)
			assert.Error(t, err)
		})
	}
}

func TestCreateAttendant_GeraIDQuandoAusente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendantRepo := mocks.NewMockAttendantRepository(ctrl)
	attendantRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(attendant *domain.Attendant) error {
			assert.NotEmpty(t, attendant.ID)
			return nil
		})

	service := NewService(&config.Config{}, attendantRepo, nil, nil)

	created, err := service.CreateAttendant(&domain.Attendant{Name: "Maria", Email: "maria@example.com", Percentage: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}
