package storefrontclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/vfg2006/engagement-manager-api/internal/domain"
)

// CreateServicePackage publica um pacote de serviço no catálogo do
// storefront. Usado pela carga inicial do catálogo (cmd/migrateservices).
func (c *StorefrontClient) CreateServicePackage(ctx context.Context, pkg domain.ServicePackage) error {
	endpoint, err := url.Parse(c.config.Storefront.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/services")

	body, err := json.Marshal(pkg)
	if err != nil {
		return fmt.Errorf("erro ao serializar o pacote: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Storefront.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	return nil
}
