package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Script pontual para carga do catálogo de pacotes na API. Percorre a
// lista fixa abaixo e envia cada pacote em sequência; falhas individuais
// não interrompem a carga e não há retry.

const (
	defaultAPIBaseURL = "http://localhost:8080"
	requestDelay      = 100 * time.Millisecond
)

type servicePackage struct {
	Name          string   `json:"name"`
	Platform      string   `json:"platform"`
	ServiceType   string   `json:"serviceType"`
	Quantity      int      `json:"quantity"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Features      []string `json:"features"`
	IsPopular     bool     `json:"isPopular"`
	IsRecommended bool     `json:"isRecommended"`
	DeliveryTime  string   `json:"deliveryTime"`
	ServiceID     string   `json:"serviceId"`
	SortOrder     int      `json:"sortOrder"`
	IsActive      bool     `json:"isActive"`
}

var defaultFeatures = []string{"Entrega gradual", "Garantia de reposição 30 dias", "Suporte via WhatsApp"}

// Catálogo completo da carga inicial. ServiceID agrupa as variantes de
// tamanho da mesma oferta.
var servicePackages = []servicePackage{
	// Instagram - seguidores
	{Name: "Instagram 100 Seguidores", Platform: "instagram", ServiceType: "seguidores", Quantity: 100, Price: 14.90, OriginalPrice: 19.90, Features: defaultFeatures, DeliveryTime: "1-2 dias", ServiceID: "ig-seguidores", SortOrder: 1, IsActive: true},
	{Name: "Instagram 250 Seguidores", Platform: "instagram", ServiceType: "seguidores", Quantity: 250, Price: 24.90, OriginalPrice: 34.90, Features: defaultFeatures, DeliveryTime: "1-2 dias", ServiceID: "ig-seguidores", SortOrder: 2, IsActive: true},
	{Name: "Instagram 500 Seguidores", Platform: "instagram", ServiceType: "seguidores", Quantity: 500, Price: 39.90, OriginalPrice: 54.90, Features: defaultFeatures, DeliveryTime: "1-3 dias", ServiceID: "ig-seguidores", SortOrder: 3, IsActive: true, IsPopular: true},
	{Name: "Instagram 1.000 Seguidores", Platform: "instagram", ServiceType: "seguidores", Quantity: 1000, Price: 64.90, OriginalPrice: 89.90, Features: defaultFeatures, DeliveryTime: "2-4 dias", ServiceID: "ig-seguidores", SortOrder: 4, IsActive: true, IsRecommended: true},
	{Name: "Instagram 2.500 Seguidores", Platform: "instagram", ServiceType: "seguidores", Quantity: 2500, Price: 129.90, OriginalPrice: 179.90, Features: defaultFeatures, DeliveryTime: "3-5 dias", ServiceID: "ig-seguidores", SortOrder: 5, IsActive: true},
	{Name: "Instagram 5.000 Seguidores", Platform: "instagram", ServiceType: "seguidores", Quantity: 5000, Price: 219.90, OriginalPrice: 299.90, Features: defaultFeatures, DeliveryTime: "4-7 dias", ServiceID: "ig-seguidores", SortOrder: 6, IsActive: true},
	{Name: "Instagram 10.000 Seguidores", Platform: "instagram", ServiceType: "seguidores", Quantity: 10000, Price: 389.90, OriginalPrice: 529.90, Features: defaultFeatures, DeliveryTime: "5-10 dias", ServiceID: "ig-seguidores", SortOrder: 7, IsActive: true},
	{Name: "Instagram 25.000 Seguidores", Platform: "instagram", ServiceType: "seguidores", Quantity: 25000, Price: 849.90, OriginalPrice: 1199.90, Features: defaultFeatures, DeliveryTime: "7-14 dias", ServiceID: "ig-seguidores", SortOrder: 8, IsActive: true},
	{Name: "Instagram 50.000 Seguidores", Platform: "instagram", ServiceType: "seguidores", Quantity: 50000, Price: 1499.90, OriginalPrice: 2099.90, Features: defaultFeatures, DeliveryTime: "10-20 dias", ServiceID: "ig-seguidores", SortOrder: 9, IsActive: true},
	{Name: "Instagram 100.000 Seguidores", Platform: "instagram", ServiceType: "seguidores", Quantity: 100000, Price: 2699.90, OriginalPrice: 3799.90, Features: defaultFeatures, DeliveryTime: "15-30 dias", ServiceID: "ig-seguidores", SortOrder: 10, IsActive: true},

	// Instagram - curtidas
	{Name: "Instagram 100 Curtidas", Platform: "instagram", ServiceType: "curtidas", Quantity: 100, Price: 7.90, OriginalPrice: 11.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "ig-curtidas", SortOrder: 11, IsActive: true},
	{Name: "Instagram 250 Curtidas", Platform: "instagram", ServiceType: "curtidas", Quantity: 250, Price: 12.90, OriginalPrice: 17.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "ig-curtidas", SortOrder: 12, IsActive: true},
	{Name: "Instagram 500 Curtidas", Platform: "instagram", ServiceType: "curtidas", Quantity: 500, Price: 19.90, OriginalPrice: 27.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "ig-curtidas", SortOrder: 13, IsActive: true, IsPopular: true},
	{Name: "Instagram 1.000 Curtidas", Platform: "instagram", ServiceType: "curtidas", Quantity: 1000, Price: 32.90, OriginalPrice: 44.90, Features: defaultFeatures, DeliveryTime: "0-2 dias", ServiceID: "ig-curtidas", SortOrder: 14, IsActive: true},
	{Name: "Instagram 2.500 Curtidas", Platform: "instagram", ServiceType: "curtidas", Quantity: 2500, Price: 64.90, OriginalPrice: 89.90, Features: defaultFeatures, DeliveryTime: "1-2 dias", ServiceID: "ig-curtidas", SortOrder: 15, IsActive: true},
	{Name: "Instagram 5.000 Curtidas", Platform: "instagram", ServiceType: "curtidas", Quantity: 5000, Price: 109.90, OriginalPrice: 149.90, Features: defaultFeatures, DeliveryTime: "1-3 dias", ServiceID: "ig-curtidas", SortOrder: 16, IsActive: true},
	{Name: "Instagram 10.000 Curtidas", Platform: "instagram", ServiceType: "curtidas", Quantity: 10000, Price: 189.90, OriginalPrice: 259.90, Features: defaultFeatures, DeliveryTime: "2-4 dias", ServiceID: "ig-curtidas", SortOrder: 17, IsActive: true},
	{Name: "Instagram 25.000 Curtidas", Platform: "instagram", ServiceType: "curtidas", Quantity: 25000, Price: 399.90, OriginalPrice: 549.90, Features: defaultFeatures, DeliveryTime: "3-7 dias", ServiceID: "ig-curtidas", SortOrder: 18, IsActive: true},

	// Instagram - visualizações
	{Name: "Instagram 1.000 Visualizações", Platform: "instagram", ServiceType: "visualizacoes", Quantity: 1000, Price: 9.90, OriginalPrice: 14.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "ig-views", SortOrder: 19, IsActive: true},
	{Name: "Instagram 5.000 Visualizações", Platform: "instagram", ServiceType: "visualizacoes", Quantity: 5000, Price: 24.90, OriginalPrice: 34.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "ig-views", SortOrder: 20, IsActive: true},
	{Name: "Instagram 10.000 Visualizações", Platform: "instagram", ServiceType: "visualizacoes", Quantity: 10000, Price: 39.90, OriginalPrice: 54.90, Features: defaultFeatures, DeliveryTime: "0-2 dias", ServiceID: "ig-views", SortOrder: 21, IsActive: true, IsPopular: true},
	{Name: "Instagram 25.000 Visualizações", Platform: "instagram", ServiceType: "visualizacoes", Quantity: 25000, Price: 79.90, OriginalPrice: 109.90, Features: defaultFeatures, DeliveryTime: "1-2 dias", ServiceID: "ig-views", SortOrder: 22, IsActive: true},
	{Name: "Instagram 50.000 Visualizações", Platform: "instagram", ServiceType: "visualizacoes", Quantity: 50000, Price: 139.90, OriginalPrice: 189.90, Features: defaultFeatures, DeliveryTime: "1-3 dias", ServiceID: "ig-views", SortOrder: 23, IsActive: true},
	{Name: "Instagram 100.000 Visualizações", Platform: "instagram", ServiceType: "visualizacoes", Quantity: 100000, Price: 249.90, OriginalPrice: 339.90, Features: defaultFeatures, DeliveryTime: "2-5 dias", ServiceID: "ig-views", SortOrder: 24, IsActive: true},

	// TikTok - seguidores
	{Name: "TikTok 100 Seguidores", Platform: "tiktok", ServiceType: "seguidores", Quantity: 100, Price: 12.90, OriginalPrice: 17.90, Features: defaultFeatures, DeliveryTime: "1-2 dias", ServiceID: "tt-seguidores", SortOrder: 25, IsActive: true},
	{Name: "TikTok 250 Seguidores", Platform: "tiktok", ServiceType: "seguidores", Quantity: 250, Price: 21.90, OriginalPrice: 29.90, Features: defaultFeatures, DeliveryTime: "1-2 dias", ServiceID: "tt-seguidores", SortOrder: 26, IsActive: true},
	{Name: "TikTok 500 Seguidores", Platform: "tiktok", ServiceType: "seguidores", Quantity: 500, Price: 34.90, OriginalPrice: 47.90, Features: defaultFeatures, DeliveryTime: "1-3 dias", ServiceID: "tt-seguidores", SortOrder: 27, IsActive: true, IsPopular: true},
	{Name: "TikTok 1.000 Seguidores", Platform: "tiktok", ServiceType: "seguidores", Quantity: 1000, Price: 54.90, OriginalPrice: 74.90, Features: defaultFeatures, DeliveryTime: "2-4 dias", ServiceID: "tt-seguidores", SortOrder: 28, IsActive: true, IsRecommended: true},
	{Name: "TikTok 2.500 Seguidores", Platform: "tiktok", ServiceType: "seguidores", Quantity: 2500, Price: 109.90, OriginalPrice: 149.90, Features: defaultFeatures, DeliveryTime: "3-5 dias", ServiceID: "tt-seguidores", SortOrder: 29, IsActive: true},
	{Name: "TikTok 5.000 Seguidores", Platform: "tiktok", ServiceType: "seguidores", Quantity: 5000, Price: 189.90, OriginalPrice: 259.90, Features: defaultFeatures, DeliveryTime: "4-7 dias", ServiceID: "tt-seguidores", SortOrder: 30, IsActive: true},
	{Name: "TikTok 10.000 Seguidores", Platform: "tiktok", ServiceType: "seguidores", Quantity: 10000, Price: 339.90, OriginalPrice: 469.90, Features: defaultFeatures, DeliveryTime: "5-10 dias", ServiceID: "tt-seguidores", SortOrder: 31, IsActive: true},
	{Name: "TikTok 25.000 Seguidores", Platform: "tiktok", ServiceType: "seguidores", Quantity: 25000, Price: 749.90, OriginalPrice: 1049.90, Features: defaultFeatures, DeliveryTime: "7-14 dias", ServiceID: "tt-seguidores", SortOrder: 32, IsActive: true},

	// TikTok - curtidas
	{Name: "TikTok 100 Curtidas", Platform: "tiktok", ServiceType: "curtidas", Quantity: 100, Price: 6.90, OriginalPrice: 9.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "tt-curtidas", SortOrder: 33, IsActive: true},
	{Name: "TikTok 250 Curtidas", Platform: "tiktok", ServiceType: "curtidas", Quantity: 250, Price: 10.90, OriginalPrice: 15.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "tt-curtidas", SortOrder: 34, IsActive: true},
	{Name: "TikTok 500 Curtidas", Platform: "tiktok", ServiceType: "curtidas", Quantity: 500, Price: 16.90, OriginalPrice: 23.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "tt-curtidas", SortOrder: 35, IsActive: true},
	{Name: "TikTok 1.000 Curtidas", Platform: "tiktok", ServiceType: "curtidas", Quantity: 1000, Price: 27.90, OriginalPrice: 38.90, Features: defaultFeatures, DeliveryTime: "0-2 dias", ServiceID: "tt-curtidas", SortOrder: 36, IsActive: true, IsPopular: true},
	{Name: "TikTok 2.500 Curtidas", Platform: "tiktok", ServiceType: "curtidas", Quantity: 2500, Price: 54.90, OriginalPrice: 75.90, Features: defaultFeatures, DeliveryTime: "1-2 dias", ServiceID: "tt-curtidas", SortOrder: 37, IsActive: true},
	{Name: "TikTok 5.000 Curtidas", Platform: "tiktok", ServiceType: "curtidas", Quantity: 5000, Price: 94.90, OriginalPrice: 129.90, Features: defaultFeatures, DeliveryTime: "1-3 dias", ServiceID: "tt-curtidas", SortOrder: 38, IsActive: true},
	{Name: "TikTok 10.000 Curtidas", Platform: "tiktok", ServiceType: "curtidas", Quantity: 10000, Price: 164.90, OriginalPrice: 224.90, Features: defaultFeatures, DeliveryTime: "2-4 dias", ServiceID: "tt-curtidas", SortOrder: 39, IsActive: true},
	{Name: "TikTok 25.000 Curtidas", Platform: "tiktok", ServiceType: "curtidas", Quantity: 25000, Price: 349.90, OriginalPrice: 479.90, Features: defaultFeatures, DeliveryTime: "3-7 dias", ServiceID: "tt-curtidas", SortOrder: 40, IsActive: true},

	// TikTok - visualizações
	{Name: "TikTok 1.000 Visualizações", Platform: "tiktok", ServiceType: "visualizacoes", Quantity: 1000, Price: 5.90, OriginalPrice: 8.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "tt-views", SortOrder: 41, IsActive: true},
	{Name: "TikTok 5.000 Visualizações", Platform: "tiktok", ServiceType: "visualizacoes", Quantity: 5000, Price: 14.90, OriginalPrice: 21.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "tt-views", SortOrder: 42, IsActive: true},
	{Name: "TikTok 10.000 Visualizações", Platform: "tiktok", ServiceType: "visualizacoes", Quantity: 10000, Price: 24.90, OriginalPrice: 35.90, Features: defaultFeatures, DeliveryTime: "0-2 dias", ServiceID: "tt-views", SortOrder: 43, IsActive: true, IsPopular: true},
	{Name: "TikTok 25.000 Visualizações", Platform: "tiktok", ServiceType: "visualizacoes", Quantity: 25000, Price: 49.90, OriginalPrice: 69.90, Features: defaultFeatures, DeliveryTime: "1-2 dias", ServiceID: "tt-views", SortOrder: 44, IsActive: true},
	{Name: "TikTok 50.000 Visualizações", Platform: "tiktok", ServiceType: "visualizacoes", Quantity: 50000, Price: 89.90, OriginalPrice: 124.90, Features: defaultFeatures, DeliveryTime: "1-3 dias", ServiceID: "tt-views", SortOrder: 45, IsActive: true},
	{Name: "TikTok 100.000 Visualizações", Platform: "tiktok", ServiceType: "visualizacoes", Quantity: 100000, Price: 159.90, OriginalPrice: 219.90, Features: defaultFeatures, DeliveryTime: "2-5 dias", ServiceID: "tt-views", SortOrder: 46, IsActive: true},
	{Name: "TikTok 250.000 Visualizações", Platform: "tiktok", ServiceType: "visualizacoes", Quantity: 250000, Price: 349.90, OriginalPrice: 479.90, Features: defaultFeatures, DeliveryTime: "3-7 dias", ServiceID: "tt-views", SortOrder: 47, IsActive: true},
	{Name: "TikTok 500.000 Visualizações", Platform: "tiktok", ServiceType: "visualizacoes", Quantity: 500000, Price: 599.90, OriginalPrice: 829.90, Features: defaultFeatures, DeliveryTime: "5-10 dias", ServiceID: "tt-views", SortOrder: 48, IsActive: true},

	// YouTube - inscritos
	{Name: "YouTube 100 Inscritos", Platform: "youtube", ServiceType: "inscritos", Quantity: 100, Price: 29.90, OriginalPrice: 39.90, Features: defaultFeatures, DeliveryTime: "2-4 dias", ServiceID: "yt-inscritos", SortOrder: 49, IsActive: true},
	{Name: "YouTube 250 Inscritos", Platform: "youtube", ServiceType: "inscritos", Quantity: 250, Price: 59.90, OriginalPrice: 79.90, Features: defaultFeatures, DeliveryTime: "2-5 dias", ServiceID: "yt-inscritos", SortOrder: 50, IsActive: true},
	{Name: "YouTube 500 Inscritos", Platform: "youtube", ServiceType: "inscritos", Quantity: 500, Price: 99.90, OriginalPrice: 139.90, Features: defaultFeatures, DeliveryTime: "3-7 dias", ServiceID: "yt-inscritos", SortOrder: 51, IsActive: true, IsPopular: true},
	{Name: "YouTube 1.000 Inscritos", Platform: "youtube", ServiceType: "inscritos", Quantity: 1000, Price: 179.90, OriginalPrice: 249.90, Features: defaultFeatures, DeliveryTime: "4-10 dias", ServiceID: "yt-inscritos", SortOrder: 52, IsActive: true, IsRecommended: true},
	{Name: "YouTube 2.500 Inscritos", Platform: "youtube", ServiceType: "inscritos", Quantity: 2500, Price: 399.90, OriginalPrice: 549.90, Features: defaultFeatures, DeliveryTime: "7-14 dias", ServiceID: "yt-inscritos", SortOrder: 53, IsActive: true},
	{Name: "YouTube 5.000 Inscritos", Platform: "youtube", ServiceType: "inscritos", Quantity: 5000, Price: 749.90, OriginalPrice: 1029.90, Features: defaultFeatures, DeliveryTime: "10-20 dias", ServiceID: "yt-inscritos", SortOrder: 54, IsActive: true},
	{Name: "YouTube 10.000 Inscritos", Platform: "youtube", ServiceType: "inscritos", Quantity: 10000, Price: 1399.90, OriginalPrice: 1899.90, Features: defaultFeatures, DeliveryTime: "15-30 dias", ServiceID: "yt-inscritos", SortOrder: 55, IsActive: true},
	{Name: "YouTube 25.000 Inscritos", Platform: "youtube", ServiceType: "inscritos", Quantity: 25000, Price: 3199.90, OriginalPrice: 4399.90, Features: defaultFeatures, DeliveryTime: "20-45 dias", ServiceID: "yt-inscritos", SortOrder: 56, IsActive: true},

	// YouTube - visualizações
	{Name: "YouTube 1.000 Visualizações", Platform: "youtube", ServiceType: "visualizacoes", Quantity: 1000, Price: 19.90, OriginalPrice: 27.90, Features: defaultFeatures, DeliveryTime: "1-2 dias", ServiceID: "yt-views", SortOrder: 57, IsActive: true},
	{Name: "YouTube 2.500 Visualizações", Platform: "youtube", ServiceType: "visualizacoes", Quantity: 2500, Price: 39.90, OriginalPrice: 54.90, Features: defaultFeatures, DeliveryTime: "1-3 dias", ServiceID: "yt-views", SortOrder: 58, IsActive: true},
	{Name: "YouTube 5.000 Visualizações", Platform: "youtube", ServiceType: "visualizacoes", Quantity: 5000, Price: 69.90, OriginalPrice: 94.90, Features: defaultFeatures, DeliveryTime: "2-4 dias", ServiceID: "yt-views", SortOrder: 59, IsActive: true, IsPopular: true},
	{Name: "YouTube 10.000 Visualizações", Platform: "youtube", ServiceType: "visualizacoes", Quantity: 10000, Price: 119.90, OriginalPrice: 164.90, Features: defaultFeatures, DeliveryTime: "2-5 dias", ServiceID: "yt-views", SortOrder: 60, IsActive: true},
	{Name: "YouTube 25.000 Visualizações", Platform: "youtube", ServiceType: "visualizacoes", Quantity: 25000, Price: 259.90, OriginalPrice: 359.90, Features: defaultFeatures, DeliveryTime: "3-7 dias", ServiceID: "yt-views", SortOrder: 61, IsActive: true},
	{Name: "YouTube 50.000 Visualizações", Platform: "youtube", ServiceType: "visualizacoes", Quantity: 50000, Price: 469.90, OriginalPrice: 649.90, Features: defaultFeatures, DeliveryTime: "5-10 dias", ServiceID: "yt-views", SortOrder: 62, IsActive: true},
	{Name: "YouTube 100.000 Visualizações", Platform: "youtube", ServiceType: "visualizacoes", Quantity: 100000, Price: 849.90, OriginalPrice: 1169.90, Features: defaultFeatures, DeliveryTime: "7-15 dias", ServiceID: "yt-views", SortOrder: 63, IsActive: true},
	{Name: "YouTube 250.000 Visualizações", Platform: "youtube", ServiceType: "visualizacoes", Quantity: 250000, Price: 1899.90, OriginalPrice: 2599.90, Features: defaultFeatures, DeliveryTime: "10-25 dias", ServiceID: "yt-views", SortOrder: 64, IsActive: true},

	// YouTube - curtidas
	{Name: "YouTube 100 Curtidas", Platform: "youtube", ServiceType: "curtidas", Quantity: 100, Price: 9.90, OriginalPrice: 13.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "yt-curtidas", SortOrder: 65, IsActive: true},
	{Name: "YouTube 250 Curtidas", Platform: "youtube", ServiceType: "curtidas", Quantity: 250, Price: 17.90, OriginalPrice: 24.90, Features: defaultFeatures, DeliveryTime: "0-1 dia", ServiceID: "yt-curtidas", SortOrder: 66, IsActive: true},
	{Name: "YouTube 500 Curtidas", Platform: "youtube", ServiceType: "curtidas", Quantity: 500, Price: 29.90, OriginalPrice: 41.90, Features: defaultFeatures, DeliveryTime: "0-2 dias", ServiceID: "yt-curtidas", SortOrder: 67, IsActive: true},
	{Name: "YouTube 1.000 Curtidas", Platform: "youtube", ServiceType: "curtidas", Quantity: 1000, Price: 49.90, OriginalPrice: 68.90, Features: defaultFeatures, DeliveryTime: "1-2 dias", ServiceID: "yt-curtidas", SortOrder: 68, IsActive: true},
	{Name: "YouTube 2.500 Curtidas", Platform: "youtube", ServiceType: "curtidas", Quantity: 2500, Price: 99.90, OriginalPrice: 137.90, Features: defaultFeatures, DeliveryTime: "1-3 dias", ServiceID: "yt-curtidas", SortOrder: 69, IsActive: true},
	{Name: "YouTube 5.000 Curtidas", Platform: "youtube", ServiceType: "curtidas", Quantity: 5000, Price: 179.90, OriginalPrice: 247.90, Features: defaultFeatures, DeliveryTime: "2-4 dias", ServiceID: "yt-curtidas", SortOrder: 70, IsActive: true},
}

type migrationResult struct {
	Total   int
	Success int
	Errors  int
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando carga do catálogo de serviços...")
}

// runMigration envia os pacotes em sequência. Falhas não interrompem a
// carga: o registro seguinte é sempre tentado.
func runMigration(baseURL string, httpClient *http.Client, packages []servicePackage, delay time.Duration) migrationResult {
	log.Printf("Iniciando envio de %d pacotes para %s...", len(packages), baseURL)
	startTime := time.Now()

	result := migrationResult{Total: len(packages)}

	for i, pkg := range packages {
		if i > 0 {
			time.Sleep(delay)
		}

		if err := postPackage(baseURL, httpClient, pkg); err != nil {
			log.Printf("ERRO ao enviar pacote [%d/%d] %s: %v", i+1, len(packages), pkg.Name, err)
			result.Errors++
			continue
		}

		result.Success++
		if i > 0 && i%10 == 0 {
			log.Printf("Progresso: %d/%d pacotes processados", i+1, len(packages))
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Carga concluída em %v. Sucesso: %d, Erros: %d", elapsed, result.Success, result.Errors)

	return result
}

func postPackage(baseURL string, httpClient *http.Client, pkg servicePackage) error {
	body, err := json.Marshal(pkg)
	if err != nil {
		return fmt.Errorf("erro ao serializar pacote: %w", err)
	}

	resp, err := httpClient.Post(baseURL+"/v1/services", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro na requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resposta inesperada: status %d", resp.StatusCode)
	}

	return nil
}

func main() {
	setupLogger()

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	result := runMigration(baseURL, httpClient, servicePackages, requestDelay)

	if result.Errors > 0 {
		log.Printf("Carga finalizada com falhas: %d de %d pacotes não foram enviados", result.Errors, result.Total)
		os.Exit(1)
	}

	log.Printf("Todos os %d pacotes foram enviados com sucesso", result.Total)
}
