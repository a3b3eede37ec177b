package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-manager-api/internal/usecases/checkout"
	"github.com/vfg2006/engagement-manager-api/pkg/apiErrors"
)

// StartUpsell cria a sessão de oferta adicional do checkout e a cobrança
// PIX correspondente. Rota pública: é consumida pelo site de vendas logo
// após a confirmação do pedido principal.
func StartUpsell(service checkout.UpsellService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - StartUpsell")

		var req checkout.StartUpsellRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		session, err := service.StartUpsell(r.Context(), req)
		if err != nil {
			handleUpsellError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(session); err != nil {
			logrus.Error(err)
		}
	}
}

// GetUpsellSession retorna o estado atual da sessão de upsell. O site faz
// polling desta rota enquanto o cliente decide a oferta.
func GetUpsellSession(service checkout.UpsellService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sessão é obrigatório", nil)
			return
		}

		session, err := service.GetSession(r.Context(), id)
		if err != nil {
			handleUpsellError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(session); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// DeclineUpsell registra a recusa da oferta pelo cliente. Sessões já
// resolvidas (aprovadas, expiradas ou recusadas) não mudam de estado.
func DeclineUpsell(service checkout.UpsellService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeclineUpsell")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sessão é obrigatório", nil)
			return
		}

		session, err := service.DeclineUpsell(r.Context(), id)
		if err != nil {
			handleUpsellError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(session); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// handleUpsellError mapeia os erros do checkout para as respostas da API
func handleUpsellError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrChargeNotFound, "Sessão de upsell não encontrada", nil)

	case errors.Is(err, checkout.ErrInvalidTransition):
		apiErrors.WriteError(w, apiErrors.ErrInvalidNextStep, "A sessão já foi resolvida e não aceita esta operação", nil)

	case strings.Contains(err.Error(), "obrigatórios"):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case strings.Contains(err.Error(), "cobrança"):
		logrus.Error("Payment gateway error:", err)
		apiErrors.WriteError(w, apiErrors.ErrPaymentGateway, "Erro ao criar cobrança no gateway de pagamento", nil)

	default:
		logrus.Error("Upsell error:", err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar sessão de upsell", nil)
	}
}
