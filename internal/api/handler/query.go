package handler

import (
	"fmt"
	"net/http"
	"time"
)

// parsePeriod extrai o intervalo de datas da query string. Os parâmetros
// são opcionais e retornam nil quando ausentes.
func parsePeriod(r *http.Request) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, fmt.Errorf("start_date inválida: %w", err)
		}
		startDate = &parsed
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, fmt.Errorf("end_date inválida: %w", err)
		}
		endDate = &parsed
	}

	return startDate, endDate, nil
}
