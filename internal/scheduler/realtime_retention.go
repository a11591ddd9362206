package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/parking-revenue-api/infrastructure/repository"
	"github.com/vfg2006/parking-revenue-api/internal/config"
)

// RealtimeRetentionConfig representa a configuração do expurgo do log realtime
type RealtimeRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// RealtimeRetentionService agenda o expurgo do log de transações em tempo
// real. O log só sustenta os endpoints realtime e os cards de resumo (janela
// de sete dias); a história consolidada vive no ledger diário, então linhas
// antigas podem ser descartadas.
type RealtimeRetentionService struct {
	scheduler          *gocron.Scheduler
	config             RealtimeRetentionConfig
	realtimeRepo       repository.RealtimeRepository
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunDeleted     int64
}

// NewRealtimeRetentionService cria uma nova instância do serviço de expurgo
func NewRealtimeRetentionService(
	realtimeRepo repository.RealtimeRepository,
	appConfig *config.Config,
) *RealtimeRetentionService {
	retentionConfig := RealtimeRetentionConfig{
		CronSchedule:  appConfig.RealtimeRetention.CronSchedule,
		RetentionDays: appConfig.RealtimeRetention.RetentionDays,
		Enabled:       appConfig.RealtimeRetention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"enabled":        retentionConfig.Enabled,
	}).Info("Configuração do expurgo do log realtime carregada")

	return &RealtimeRetentionService{
		scheduler:    scheduler,
		config:       retentionConfig,
		realtimeRepo: realtimeRepo,
	}
}

// Start inicia o agendador
func (s *RealtimeRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Expurgo do log realtime desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de expurgo do log realtime")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purgeExpiredTransactions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar expurgo do log realtime: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de expurgo do log realtime")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun dispara uma execução fora do agendamento
func (s *RealtimeRetentionService) TriggerManualRun() error {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		return fmt.Errorf("expurgo do log realtime já em andamento")
	}
	s.runMutex.Unlock()

	go s.purgeExpiredTransactions()
	return nil
}

// Status retorna o estado da última execução
func (s *RealtimeRetentionService) Status() map[string]interface{} {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]interface{}{
		"enabled":                s.config.Enabled,
		"cron_schedule":          s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"running":                s.runRunning,
		"last_run_started_at":    s.lastRunStartedAt,
		"last_run_completed_at":  s.lastRunCompletedAt,
		"last_run_deleted_count": s.lastRunDeleted,
	}
}

func (s *RealtimeRetentionService) purgeExpiredTransactions() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Expurgo do log realtime já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	deleted, err := s.realtimeRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao expurgar o log realtime")
		return
	}

	s.runMutex.Lock()
	s.lastRunDeleted = deleted
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"deleted_rows":   deleted,
		"retention_days": s.config.RetentionDays,
	}).Info("Expurgo do log realtime concluído")
}
