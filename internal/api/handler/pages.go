package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-manager-api/internal/domain"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/paging"
	"github.com/vfg2006/engagement-manager-api/pkg/apiErrors"
)

// ListCompanyPages retorna as páginas de marketing cadastradas
func ListCompanyPages(service paging.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := service.ListPages()
		if err != nil {
			logrus.Error("Error listing pages:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar páginas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pages); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetCompanyPage retorna uma página com seus links UTM e métricas
func GetCompanyPage(service paging.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da página é obrigatório", nil)
			return
		}

		page, err := service.GetPage(id)
		if err != nil {
			if errors.Is(err, paging.ErrPageNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Página não encontrada", nil)
				return
			}

			logrus.Error("Error fetching page:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar página", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// CreateCompanyPage cadastra uma nova página de marketing
func CreateCompanyPage(service paging.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCompanyPage")

		var page domain.CompanyPage
		if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreatePage(&page)
		if err != nil {
			logrus.Error("Error creating page:", err)
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

// UpdateCompanyPage aplica atualização parcial em uma página
func UpdateCompanyPage(service paging.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCompanyPage")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da página é obrigatório", nil)
			return
		}

		var req domain.UpdateCompanyPageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		req.ID = id

		if err := service.UpdatePage(&req); err != nil {
			if errors.Is(err, paging.ErrPageNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Página não encontrada", nil)
				return
			}

			logrus.Error("Error updating page:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteCompanyPage remove a página e os links UTM associados
func DeleteCompanyPage(service paging.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da página é obrigatório", nil)
			return
		}

		if err := service.DeletePage(id); err != nil {
			if errors.Is(err, paging.ErrPageNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Página não encontrada", nil)
				return
			}

			logrus.Error("Error deleting page:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover página", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CreateUtmLink cadastra um link rastreável em uma página. A URL final é
// montada pelo serviço a partir dos parâmetros UTM informados.
func CreateUtmLink(service paging.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUtmLink")

		pageID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if pageID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da página é obrigatório", nil)
			return
		}

		var link domain.UtmLink
		if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		link.PageID = pageID

		created, err := service.CreateUtmLink(&link)
		if err != nil {
			if errors.Is(err, paging.ErrPageNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Página não encontrada", nil)
				return
			}

			logrus.Error("Error creating UTM link:", err)
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

// DeleteUtmLink remove um link rastreável de uma página
func DeleteUtmLink(service paging.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteUtmLink")

		params := httprouter.ParamsFromContext(r.Context())
		pageID := params.ByName("id")
		linkID := params.ByName("link_id")
		if pageID == "" || linkID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da página e do link são obrigatórios", nil)
			return
		}

		if err := service.DeleteUtmLink(pageID, linkID); err != nil {
			switch {
			case errors.Is(err, paging.ErrPageNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Página não encontrada", nil)

			case errors.Is(err, paging.ErrUtmLinkNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Link UTM não encontrado", map[string]any{
					"page_id": pageID,
					"link_id": linkID,
				})

			default:
				logrus.Error("Error deleting UTM link:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover link UTM", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
