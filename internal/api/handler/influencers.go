package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/influencing"
	"github.com/vfg2006/engagement-manager-api/pkg/apiErrors"
)

// ListInfluencers retorna os influenciadores cadastrados
func ListInfluencers(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		onlyActive := r.URL.Query().Get("include_inactive") != "true"

		influencers, err := service.ListInfluencers(onlyActive)
		if err != nil {
			logrus.Error("Error listing influencers:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar influenciadores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(influencers); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetInfluencer retorna um influenciador específico com seus perfis
func GetInfluencer(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do influenciador é obrigatório", nil)
			return
		}

		influencer, err := service.GetInfluencer(id)
		if err != nil {
			if errors.Is(err, influencing.ErrInfluencerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Influenciador não encontrado", nil)
				return
			}

			logrus.Error("Error fetching influencer:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar influenciador", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(influencer); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// CreateInfluencer cadastra um novo influenciador. O UID de atribuição é
// gerado pelo serviço quando não informado.
func CreateInfluencer(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateInfluencer")

		var influencer domain.Influencer
		if err := json.NewDecoder(r.Body).Decode(&influencer); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateInfluencer(&influencer)
		if err != nil {
			logrus.Error("Error creating influencer:", err)
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

// UpdateInfluencer aplica atualização parcial em um influenciador
func UpdateInfluencer(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateInfluencer")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do influenciador é obrigatório", nil)
			return
		}

		var req domain.UpdateInfluencerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		req.ID = id

		if err := service.UpdateInfluencer(&req); err != nil {
			if errors.Is(err, influencing.ErrInfluencerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Influenciador não encontrado", nil)
				return
			}

			logrus.Error("Error updating influencer:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// ToggleInfluencer ativa ou desativa um influenciador
func ToggleInfluencer(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do influenciador é obrigatório", nil)
			return
		}

		isActive, err := service.ToggleInfluencerActive(id)
		if err != nil {
			if errors.Is(err, influencing.ErrInfluencerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Influenciador não encontrado", nil)
				return
			}

			logrus.Error("Error toggling influencer:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar influenciador", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"isActive": isActive})
	}
}

// DeleteInfluencer remove definitivamente um influenciador
func DeleteInfluencer(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do influenciador é obrigatório", nil)
			return
		}

		if err := service.DeleteInfluencer(id); err != nil {
			if errors.Is(err, influencing.ErrInfluencerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Influenciador não encontrado", nil)
				return
			}

			logrus.Error("Error deleting influencer:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover influenciador", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetInfluencerSales retorna as vendas atribuídas ao influenciador via UTM
// no período informado
func GetInfluencerSales(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do influenciador é obrigatório", nil)
			return
		}

		startDate, endDate, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		sales, err := service.GetSales(r.Context(), id, domain.SalesFilters{
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			if errors.Is(err, influencing.ErrInfluencerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Influenciador não encontrado", map[string]any{
					"influencer_id": id,
				})
				return
			}

			logrus.Error("Error fetching influencer sales:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar vendas do influenciador", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
