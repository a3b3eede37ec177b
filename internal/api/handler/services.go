package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/catalog"
	"github.com/vfg2006/engagement-manager-api/pkg/apiErrors"
)

// ListServicePackages retorna o catálogo de pacotes. A rota é pública e
// alimenta o site de vendas; por padrão retorna apenas pacotes ativos,
// a menos que o painel peça o catálogo completo com include_inactive=true.
func ListServicePackages(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		onlyActive := r.URL.Query().Get("include_inactive") != "true"

		packages, err := service.ListPackages(onlyActive)
		if err != nil {
			logrus.Error("Error listing service packages:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar pacotes de serviço", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(packages); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetServicePackage retorna um pacote específico do catálogo
func GetServicePackage(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pacote é obrigatório", nil)
			return
		}

		pkg, err := service.GetPackage(id)
		if err != nil {
			if errors.Is(err, catalog.ErrPackageNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Pacote não encontrado", map[string]any{
					"package_id": id,
				})
				return
			}

			logrus.Error("Error fetching service package:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pacote de serviço", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pkg); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// CreateServicePackage cadastra um novo pacote no catálogo
func CreateServicePackage(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateServicePackage")

		var pkg domain.ServicePackage
		if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreatePackage(&pkg)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}

// UpdateServicePackage aplica atualização parcial em um pacote do catálogo
func UpdateServicePackage(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateServicePackage")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pacote é obrigatório", nil)
			return
		}

		var req domain.UpdateServicePackageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		// Garante que o ID da URL seja usado
		req.ID = id

		if err := service.UpdatePackage(&req); err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// ToggleServicePackage ativa ou desativa um pacote sem removê-lo do
// catálogo, preservando o histórico de pedidos que o referenciam.
func ToggleServicePackage(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pacote é obrigatório", nil)
			return
		}

		isActive, err := service.TogglePackageActive(id)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"isActive": isActive})
	}
}

// DeleteServicePackage remove definitivamente um pacote do catálogo
func DeleteServicePackage(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pacote é obrigatório", nil)
			return
		}

		if err := service.DeletePackage(id); err != nil {
			handleCatalogError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleCatalogError mapeia os erros do catálogo para as respostas da API
func handleCatalogError(w http.ResponseWriter, err error) {
	logrus.Error("Catalog error:", err)

	switch {
	case errors.Is(err, catalog.ErrPackageNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Pacote não encontrado", nil)

	case errors.Is(err, catalog.ErrInvalidPlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma inválida. Valores aceitos: instagram, youtube, tiktok", nil)

	case errors.Is(err, catalog.ErrInvalidServiceType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de serviço inválido. Valores aceitos: seguidores, curtidas, visualizacoes, inscritos", nil)

	case errors.Is(err, catalog.ErrInvalidPrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Preço deve ser maior que zero", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar pacote de serviço", nil)
	}
}
