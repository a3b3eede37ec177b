package storefrontclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	storefrontdomain "github.com/vfg2006/engagement-manager-api/infrastructure/integrator/storefront/domain"
)

type ListOrdersParams struct {
	StartDate   *time.Time
	EndDate     *time.Time
	UtmCampaign string
	Search      string
	Page        int
	Limit       int
	Sort        string
}

func (c *StorefrontClient) ListOrders(ctx context.Context, params ListOrdersParams) (OrdersResponse, error) {
	return c.getOrders(ctx, "/orders", params)
}

// GetAttendantSales consulta o endpoint dedicado de vendas por atendente.
// Backends antigos não expõem essa rota e respondem 404; nesse caso o
// chamador deve cair para ListOrders com filtro local.
func (c *StorefrontClient) GetAttendantSales(ctx context.Context, attendantID string, params ListOrdersParams) (OrdersResponse, error) {
	return c.getOrders(ctx, path.Join("/attendants", attendantID, "sales"), params)
}

// GetOrderByID consulta um pedido específico. Alimenta a consulta pública
// de status de pedido do site.
func (c *StorefrontClient) GetOrderByID(ctx context.Context, orderID string) (storefrontdomain.Order, error) {
	var order storefrontdomain.Order

	endpoint, err := url.Parse(c.config.Storefront.URL)
	if err != nil {
		return order, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/orders", orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return order, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Storefront.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return order, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return order, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return order, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return order, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return order, nil
}

func (c *StorefrontClient) getOrders(ctx context.Context, resource string, params ListOrdersParams) (OrdersResponse, error) {
	var response OrdersResponse

	endpoint, err := url.Parse(c.config.Storefront.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	query := endpoint.Query()
	if params.StartDate != nil {
		query.Set("start_date", params.StartDate.Format(time.DateOnly))
	}
	if params.EndDate != nil {
		query.Set("end_date", params.EndDate.Format(time.DateOnly))
	}
	if params.UtmCampaign != "" {
		query.Set("utm_campaign", params.UtmCampaign)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Storefront.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return response, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
