package handler

import (
	"net/http"

	"github.com/vfg2006/engagement-manager-api/internal/api/handler/router"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/attendanting"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/catalog"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/checkout"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/dashboard"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/influencing"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/paging"
	"github.com/vfg2006/engagement-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Services retorna as rotas do catálogo de pacotes. A listagem é pública
// porque alimenta o site de vendas; a gestão é restrita ao painel.
func Services(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/services",
			Method:  http.MethodGet,
			Handler: ListServicePackages(service),
		},
		{
			Path:        "/v1/services/:id",
			Method:      http.MethodGet,
			Handler:     GetServicePackage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services",
			Method:      http.MethodPost,
			Handler:     CreateServicePackage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/services/:id",
			Method:      http.MethodPut,
			Handler:     UpdateServicePackage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/services/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteServicePackage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/services/:id/toggle",
			Method:      http.MethodPatch,
			Handler:     ToggleServicePackage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Attendants(service attendanting.AttendantService, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/attendants",
			Method:      http.MethodGet,
			Handler:     ListAttendants(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/attendants",
			Method:      http.MethodPost,
			Handler:     CreateAttendant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/attendants/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAttendant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/attendants/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAttendant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/attendants/:id/toggle",
			Method:      http.MethodPatch,
			Handler:     ToggleAttendant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/attendants/:id/reset-password",
			Method:      http.MethodPost,
			Handler:     ResetAttendantPassword(authenticator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/attendants/:id/sales",
			Method:      http.MethodGet,
			Handler:     GetAttendantSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			// Atendentes só enxergam as próprias vendas; o vínculo vem do token.
			Path:        "/v1/me/sales",
			Method:      http.MethodGet,
			Handler:     GetMyAttendantSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AttendantOnly()},
		},
	}
}

func Influencers(service influencing.InfluencerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/influencers",
			Method:      http.MethodGet,
			Handler:     ListInfluencers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/influencers",
			Method:      http.MethodPost,
			Handler:     CreateInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/influencers/:id",
			Method:      http.MethodGet,
			Handler:     GetInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/influencers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/influencers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/influencers/:id/toggle",
			Method:      http.MethodPatch,
			Handler:     ToggleInfluencer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/influencers/:id/sales",
			Method:      http.MethodGet,
			Handler:     GetInfluencerSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Pages(service paging.PageService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pages",
			Method:      http.MethodGet,
			Handler:     ListCompanyPages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/pages",
			Method:      http.MethodPost,
			Handler:     CreateCompanyPage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/pages/:id",
			Method:      http.MethodGet,
			Handler:     GetCompanyPage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/pages/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCompanyPage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/pages/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCompanyPage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/pages/:id/utm-links",
			Method:      http.MethodPost,
			Handler:     CreateUtmLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/pages/:id/utm-links/:link_id",
			Method:      http.MethodDelete,
			Handler:     DeleteUtmLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Dashboard(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			// Consulta pública de status de pedido usada pelo site.
			Path:    "/v1/orders/:id",
			Method:  http.MethodGet,
			Handler: GetOrderStatus(service),
		},
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/dashboard/orders",
			Method:      http.MethodGet,
			Handler:     ListDashboardOrders(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// Payments retorna as rotas do fluxo de upsell do checkout. São rotas
// públicas consumidas pelo site de vendas.
func Payments(service checkout.UpsellService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/payments/upsell",
			Method:  http.MethodPost,
			Handler: StartUpsell(service),
		},
		{
			Path:    "/v1/payments/upsell/:id",
			Method:  http.MethodGet,
			Handler: GetUpsellSession(service),
		},
		{
			Path:    "/v1/payments/upsell/:id/decline",
			Method:  http.MethodPost,
			Handler: DeclineUpsell(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
