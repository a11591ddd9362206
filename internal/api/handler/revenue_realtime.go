package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/parking-revenue-api/internal/domain"
	"github.com/vfg2006/parking-revenue-api/internal/usecases/revenue"
	"github.com/vfg2006/parking-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/parking-revenue-api/pkg/middleware"
)

// GetRealtime retorna o snapshot global por categoria de veículo
func GetRealtime(service revenue.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		snapshots, err := service.RealtimeAll(claims)
		if err != nil {
			if errors.Is(err, revenue.ErrNoRealtimeData) {
				respondNotFound(w, "Nenhuma transação em tempo real encontrada")
				return
			}
			logrus.WithError(err).Error("Erro ao montar o snapshot em tempo real")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar a receita em tempo real", nil)
			return
		}

		respondJSON(w, map[string]interface{}{"categories": snapshots})
	}
}

// GetRealtimeByLocation retorna o snapshot resolvido por localização
func GetRealtimeByLocation(service revenue.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		snapshots, err := service.RealtimeByLocation(claims)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar o snapshot por localização")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar a receita em tempo real", nil)
			return
		}

		respondJSON(w, map[string]interface{}{"locations": snapshots})
	}
}

// GetSummaryCards retorna o resumo da janela móvel de sete dias
func GetSummaryCards(service revenue.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		summary, err := service.SummaryCards(claims)
		if err != nil {
			if errors.Is(err, revenue.ErrNoRealtimeData) {
				respondNotFound(w, "Nenhuma transação em tempo real encontrada")
				return
			}
			logrus.WithError(err).Error("Erro ao montar o resumo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar o resumo de receita", nil)
			return
		}

		respondJSON(w, summary)
	}
}
