package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
	"github.com/vfg2006/parking-revenue-api/internal/usecases/revenue"
	"github.com/vfg2006/parking-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/parking-revenue-api/pkg/middleware"
)

// GetDailyDetails retorna a série diária do mês pedido por localização
func GetDailyDetails(service revenue.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		yearParam := r.URL.Query().Get("year")
		monthParam := r.URL.Query().Get("month")
		if yearParam == "" || monthParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os parâmetros year e month são obrigatórios", nil)
			return
		}

		year, err := strconv.Atoi(yearParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro year deve ser um número", nil)
			return
		}

		month, err := strconv.Atoi(monthParam)
		if err != nil || month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro month deve ser um número entre 1 e 12", nil)
			return
		}

		report, err := service.DailyDetails(claims, year, time.Month(month))
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar o relatório diário")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar a receita diária", nil)
			return
		}

		respondJSON(w, report)
	}
}

// GetYearlyDetails retorna a série anual cobrindo todo o histórico
func GetYearlyDetails(service revenue.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		report, err := service.YearlyDetails(claims)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar o relatório anual")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar a receita anual", nil)
			return
		}

		respondJSON(w, report)
	}
}

// GetLocations lista os nomes das localizações visíveis que já possuem receita
func GetLocations(service revenue.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		sites, err := service.Locations(claims)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar localizações")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar as localizações", nil)
			return
		}

		respondJSON(w, map[string][]string{"locations": sites})
	}
}
