package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
	"github.com/vfg2006/parking-revenue-api/internal/usecases/revenue"
	"github.com/vfg2006/parking-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/parking-revenue-api/pkg/middleware"
)

// GetMonthlyTrends retorna os últimos seis meses somados entre as
// localizações visíveis
func GetMonthlyTrends(service revenue.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		series, err := service.MonthlyTrends(claims)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar a tendência mensal")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar a tendência mensal", nil)
			return
		}

		respondJSON(w, map[string]interface{}{"series": series})
	}
}

// GetMonthlyTrendsByLocation retorna a mesma janela de seis meses chaveada
// pelo nome da localização
func GetMonthlyTrendsByLocation(service revenue.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		report, err := service.MonthlyTrendsByLocation(claims)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar a tendência mensal por localização")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar a tendência mensal", nil)
			return
		}

		respondJSON(w, report)
	}
}

// GetYearlyTrends retorna os últimos seis anos com o total composto por
// localização, incluindo localizações sem movimento
func GetYearlyTrends(service revenue.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		report, err := service.YearlyTrends(claims)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar a tendência anual")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar a tendência anual", nil)
			return
		}

		respondJSON(w, report)
	}
}
