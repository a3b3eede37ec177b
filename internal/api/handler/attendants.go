package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/attendanting"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/engagement-manager-api/pkg/apiErrors"
	"github.com/vfg2006/engagement-manager-api/pkg/middleware"
)

// ListAttendants retorna os atendentes cadastrados
func ListAttendants(service attendanting.AttendantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		onlyActive := r.URL.Query().Get("include_inactive") != "true"

		attendants, err := service.ListAttendants(onlyActive)
		if err != nil {
			logrus.Error("Error listing attendants:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar atendentes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(attendants); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// CreateAttendant cadastra um novo atendente
func CreateAttendant(service attendanting.AttendantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAttendant")

		var attendant domain.Attendant
		if err := json.NewDecoder(r.Body).Decode(&attendant); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateAttendant(&attendant)
		if err != nil {
			logrus.Error("Error creating attendant:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}

// UpdateAttendant aplica atualização parcial em um atendente
func UpdateAttendant(service attendanting.AttendantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAttendant")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do atendente é obrigatório", nil)
			return
		}

		var req domain.UpdateAttendantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		req.ID = id

		if err := service.UpdateAttendant(&req); err != nil {
			if errors.Is(err, attendanting.ErrAttendantNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Atendente não encontrado", nil)
				return
			}

			logrus.Error("Error updating attendant:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// ToggleAttendant ativa ou desativa um atendente
func ToggleAttendant(service attendanting.AttendantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do atendente é obrigatório", nil)
			return
		}

		isActive, err := service.ToggleAttendantActive(id)
		if err != nil {
			if errors.Is(err, attendanting.ErrAttendantNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Atendente não encontrado", nil)
				return
			}

			logrus.Error("Error toggling attendant:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar atendente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"isActive": isActive})
	}
}

// DeleteAttendant remove definitivamente um atendente
func DeleteAttendant(service attendanting.AttendantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do atendente é obrigatório", nil)
			return
		}

		if err := service.DeleteAttendant(id); err != nil {
			if errors.Is(err, attendanting.ErrAttendantNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Atendente não encontrado", nil)
				return
			}

			logrus.Error("Error deleting attendant:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover atendente", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ResetAttendantPassword gera uma nova senha para o usuário do painel
// vinculado ao atendente. A senha gerada é retornada uma única vez.
func ResetAttendantPassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ResetAttendantPassword")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do atendente é obrigatório", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		newPassword, err := service.ResetAttendantPassword(userClaims.UserID, id)
		if err != nil {
			if errors.Is(err, authenticating.ErrNoAdminPrivileges) {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)
				return
			}

			logrus.Error("Error resetting attendant password:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GeneratePasswordResponse{
			Password: newPassword,
		})
	}
}

// GetAttendantSales retorna o relatório de vendas e comissão de um
// atendente no período informado
func GetAttendantSales(service attendanting.AttendantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do atendente é obrigatório", nil)
			return
		}

		writeAttendantSales(w, r, service, id)
	}
}

// GetMyAttendantSales retorna as vendas do próprio atendente logado. O
// vínculo usuário-atendente vem do token; contas sem vínculo não têm
// relatório próprio.
func GetMyAttendantSales(service attendanting.AttendantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if userClaims.UserAttendantID == nil || *userClaims.UserAttendantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário não possui atendente vinculado", nil)
			return
		}

		writeAttendantSales(w, r, service, *userClaims.UserAttendantID)
	}
}

func writeAttendantSales(w http.ResponseWriter, r *http.Request, service attendanting.AttendantService, attendantID string) {
	startDate, endDate, err := parsePeriod(r)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}

	sales, err := service.GetSales(r.Context(), attendantID, domain.SalesFilters{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		if errors.Is(err, attendanting.ErrAttendantNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Atendente não encontrado", map[string]any{
				"attendant_id": attendantID,
			})
			return
		}

		logrus.Error("Error fetching attendant sales:", err)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar vendas do atendente", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sales); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}
