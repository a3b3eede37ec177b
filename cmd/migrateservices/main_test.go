package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunMigration_FalhaNaoInterrompeACarga(t *testing.T) {
	var requests atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/services", r.URL.Path)

		// O 37º registro falha; todos os seguintes ainda devem ser tentados
		if requests.Add(1) == 37 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	result := runMigration(server.URL, server.Client(), servicePackages, 0)

	assert.Equal(t, int64(70), requests.Load())
	assert.Equal(t, 70, result.Total)
	assert.Equal(t, 69, result.Success)
	assert.Equal(t, 1, result.Errors)
	assert.Equal(t, result.Total, result.Success+result.Errors)
}

func TestRunMigration_CatalogoCompleto(t *testing.T) {
	assert.Len(t, servicePackages, 70)

	seen := make(map[int]bool)
	for _, pkg := range servicePackages {
		assert.NotEmpty(t, pkg.Name)
		assert.NotEmpty(t, pkg.ServiceID)
		assert.Greater(t, pkg.Price, 0.0)
		assert.GreaterOrEqual(t, pkg.OriginalPrice, pkg.Price)
		assert.False(t, seen[pkg.SortOrder], "sort_order duplicado: %d", pkg.SortOrder)
		seen[pkg.SortOrder] = true
	}
}

func TestRunMigration_RespeitaIntervaloEntreRequisicoes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	packages := servicePackages[:3]

	start := time.Now()
	result := runMigration(server.URL, server.Client(), packages, 20*time.Millisecond)
	elapsed := time.Since(start)

	assert.Equal(t, 3, result.Success)
	// Dois intervalos entre três requisições
	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
}
