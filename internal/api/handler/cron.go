package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/internal/scheduler"
	"github.com/vfg2006/engagement-manager-api/pkg/apiErrors"
	"github.com/vfg2006/engagement-manager-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOrders     = "orders"
	CronJobTypeUtmMetrics = "utm-metrics"
	CronJobTypeAll        = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	OrdersSyncService     *scheduler.OrdersSyncService
	UtmMetricsSyncService *scheduler.UtmMetricsSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeOrders:
			if services.OrdersSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de pedidos não disponível", nil)
				return
			}
			services.OrdersSyncService.TriggerManualSync()

		case CronJobTypeUtmMetrics:
			if services.UtmMetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de métricas UTM não disponível", nil)
				return
			}
			services.UtmMetricsSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.OrdersSyncService != nil {
				services.OrdersSyncService.TriggerManualSync()
			}
			if services.UtmMetricsSyncService != nil {
				services.UtmMetricsSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: orders, utm-metrics, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"orders":      services.OrdersSyncService.GetStatus(),
			"utm-metrics": services.UtmMetricsSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
