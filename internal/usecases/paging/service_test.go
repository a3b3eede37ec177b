package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/engagement-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (PageService, *mocks.MockCompanyPageRepository) {
	ctrl := gomock.NewController(t)
	pageRepo := mocks.NewMockCompanyPageRepository(ctrl)
	return NewService(pageRepo), pageRepo
}

func TestCreatePage_GeraSlugEIdentificador(t *testing.T) {
	service, pageRepo := newTestService(t)

	pageRepo.EXPECT().
		CreatePage(gomock.Any()).
		DoAndReturn(func(page *domain.CompanyPage) error {
			assert.NotEmpty(t, page.ID)
			assert.Equal(t, "promo-de-natal", page.Slug)
			return nil
		})

	created, err := service.CreatePage(&domain.CompanyPage{
		Name: "  Promo de Natal ",
		URL:  "https://turbineseuperfil.com.br/promo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestCreatePage_NomeObrigatorio(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreatePage(&domain.CompanyPage{})
	assert.Error(t, err)
}

func TestCreateUtmLink_MontaURLRastreavel(t *testing.T) {
	service, pageRepo := newTestService(t)

	pageRepo.EXPECT().
		GetPageByID("page-1").
		Return(&domain.CompanyPage{
			ID:  "page-1",
			URL: "https://turbineseuperfil.com.br/promo",
		}, nil)

	pageRepo.EXPECT().
		CreateUtmLink(gomock.Any()).
		Return(nil)

	link, err := service.CreateUtmLink(&domain.UtmLink{
		PageID:      "page-1",
		Name:        "Stories Janeiro",
		UtmSource:   "instagram",
		UtmMedium:   "stories",
		UtmCampaign: "promo-jan",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, link.ID)
	assert.Contains(t, link.URL, "utm_source=instagram")
	assert.Contains(t, link.URL, "utm_medium=stories")
	assert.Contains(t, link.URL, "utm_campaign=promo-jan")
}

func TestCreateUtmLink_CamposObrigatorios(t *testing.T) {
	service, _ := newTestService(t)

	// Sem utm_campaign
	_, err := service.CreateUtmLink(&domain.UtmLink{
		PageID:    "page-1",
		UtmSource: "instagram",
	})
	assert.Error(t, err)

	// Sem utm_source
	_, err = service.CreateUtmLink(&domain.UtmLink{
		PageID:      "page-1",
		UtmCampaign: "promo-jan",
	})
	assert.Error(t, err)
}

func TestCreateUtmLink_PaginaInexistente(t *testing.T) {
	service, pageRepo := newTestService(t)

	pageRepo.EXPECT().
		GetPageByID("ghost").
		Return(nil, nil)

	_, err := service.CreateUtmLink(&domain.UtmLink{
		PageID:      "ghost",
		UtmSource:   "instagram",
		UtmCampaign: "promo-jan",
	})
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestDeleteUtmLink_SomenteDaPropriaPagina(t *testing.T) {
	service, pageRepo := newTestService(t)

	pageRepo.EXPECT().
		ListUtmLinks("page-1").
		Return([]*domain.UtmLink{
			{ID: "link-1", PageID: "page-1"},
		}, nil).
		Times(2)

	pageRepo.EXPECT().
		DeleteUtmLink("link-1").
		Return(nil)

	require.NoError(t, service.DeleteUtmLink("page-1", "link-1"))

	// Link de outra página não é encontrado nesta
	err := service.DeleteUtmLink("page-1", "link-de-outra-pagina")
	assert.ErrorIs(t, err, ErrUtmLinkNotFound)
}

func TestBuildTrackedURL_PreservaQueryExistente(t *testing.T) {
	link := &domain.UtmLink{
		UtmSource:   "tiktok",
		UtmCampaign: "lancamento",
	}

	trackedURL, err := BuildTrackedURL("https://turbineseuperfil.com.br/promo?ref=site", link)
	require.NoError(t, err)

	assert.Contains(t, trackedURL, "ref=site")
	assert.Contains(t, trackedURL, "utm_source=tiktok")
	assert.Contains(t, trackedURL, "utm_campaign=lancamento")
	assert.NotContains(t, trackedURL, "utm_medium")
}
