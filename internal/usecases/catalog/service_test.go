package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCreatePackage_Validacoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockServicePackageRepository(ctrl)
	service := NewService(packageRepo)

	tests := []struct {
		name    string
		pkg     *domain.ServicePackage
		wantErr error
	}{
		{
			name:    "Plataforma inválida",
			pkg:     &domain.ServicePackage{Name: "Pacote", Platform: "orkut", ServiceType: domain.ServiceTypeFollowers, Quantity: 100, Price: 19.9},
			wantErr: ErrInvalidPlatform,
		},
		{
			name:    "Tipo de serviço inválido",
			pkg:     &domain.ServicePackage{Name: "Pacote", Platform: domain.PlatformInstagram, ServiceType: "comentarios", Quantity: 100, Price: 19.9},
			wantErr: ErrInvalidServiceType,
		},
		{
			name:    "Preço zerado",
			pkg:     &domain.ServicePackage{Name: "Pacote", Platform: domain.PlatformInstagram, ServiceType: domain.ServiceTypeFollowers, Quantity: 100},
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreatePackage(tt.pkg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreatePackage_GeraIDQuandoAusente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockServicePackageRepository(ctrl)
	packageRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(pkg *domain.ServicePackage) error {
			assert.NotEmpty(t, pkg.ID)
			return nil
		})

	service := NewService(packageRepo)

	created, err := service.CreatePackage(&domain.ServicePackage{
		Name:        "1000 Seguidores Instagram",
		Platform:    domain.PlatformInstagram,
		ServiceType: domain.ServiceTypeFollowers,
		Quantity:    1000,
		Price:       49.9,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestUpdatePackage_PacoteInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockServicePackageRepository(ctrl)
	packageRepo.EXPECT().GetByID("nao-existe").Return(nil, nil)

	service := NewService(packageRepo)

	err := service.UpdatePackage(&domain.UpdateServicePackageRequest{ID: "nao-existe"})
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestUpdatePackage_ValidaCamposParciais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockServicePackageRepository(ctrl)
	packageRepo.EXPECT().
		GetByID("pkg-1").
		Return(&domain.ServicePackage{ID: "pkg-1"}, nil).
		Times(2)

	service := NewService(packageRepo)

	badPlatform := domain.Platform("orkut")
	err := service.UpdatePackage(&domain.UpdateServicePackageRequest{ID: "pkg-1", Platform: &badPlatform})
	assert.ErrorIs(t, err, ErrInvalidPlatform)

	badPrice := -1.0
	err = service.UpdatePackage(&domain.UpdateServicePackageRequest{ID: "pkg-1", Price: &badPrice})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestTogglePackageActive_InverteOEstadoAtual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockServicePackageRepository(ctrl)
	packageRepo.EXPECT().GetByID("pkg-1").Return(&domain.ServicePackage{ID: "pkg-1", IsActive: true}, nil)
	packageRepo.EXPECT().SetActive("pkg-1", false).Return(nil)

	service := NewService(packageRepo)

	isActive, err := service.TogglePackageActive("pkg-1")
	require.NoError(t, err)
	assert.False(t, isActive)
}

func TestDeletePackage_PacoteInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	packageRepo := mocks.NewMockServicePackageRepository(ctrl)
	packageRepo.EXPECT().GetByID("pkg-404").Return(nil, nil)

	service := NewService(packageRepo)

	err := service.DeletePackage("pkg-404")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
