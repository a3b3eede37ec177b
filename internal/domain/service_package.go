package domain

import "time"

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
)

type ServiceType string

const (
	ServiceTypeFollowers   ServiceType = "seguidores"
	ServiceTypeLikes       ServiceType = "curtidas"
	ServiceTypeViews       ServiceType = "visualizacoes"
	ServiceTypeSubscribers ServiceType = "inscritos"
)

// ValidPlatform verifica se a plataforma é uma das suportadas pelo catálogo.
func ValidPlatform(p Platform) bool {
	switch p {
	case PlatformInstagram, PlatformYouTube, PlatformTikTok:
		return true
	}
	return false
}

// ValidServiceType verifica se o tipo de serviço é um dos suportados.
func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServiceTypeFollowers, ServiceTypeLikes, ServiceTypeViews, ServiceTypeSubscribers:
		return true
	}
	return false
}

// ServicePackage é um pacote vendável do catálogo (ex: 1000 seguidores no
// Instagram). Diferente de Order.AmountCents, os preços do catálogo são
// mantidos em reais (unidade principal), como o storefront sempre os expôs.
type ServicePackage struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Platform      Platform    `json:"platform"`
	ServiceType   ServiceType `json:"serviceType"`
	Quantity      int         `json:"quantity"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"originalPrice"`
	Features      []string    `json:"features"`
	IsPopular     bool        `json:"isPopular"`
	IsRecommended bool        `json:"isRecommended"`
	DeliveryTime  string      `json:"deliveryTime"`
	// ServiceID referencia o catálogo externo do fornecedor; variantes de
	// tamanho da mesma oferta compartilham o mesmo ServiceID.
	ServiceID string    `json:"serviceId"`
	SortOrder int       `json:"sortOrder"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateServicePackageRequest aplica atualização parcial em um pacote.
type UpdateServicePackageRequest struct {
	ID            string       `json:"id"`
	Name          *string      `json:"name"`
	Platform      *Platform    `json:"platform"`
	ServiceType   *ServiceType `json:"serviceType"`
	Quantity      *int         `json:"quantity"`
	Price         *float64     `json:"price"`
	OriginalPrice *float64     `json:"originalPrice"`
	Features      *[]string    `json:"features"`
	IsPopular     *bool        `json:"isPopular"`
	IsRecommended *bool        `json:"isRecommended"`
	DeliveryTime  *string      `json:"deliveryTime"`
	ServiceID     *string      `json:"serviceId"`
	SortOrder     *int         `json:"sortOrder"`
	IsActive      *bool        `json:"isActive"`
}
