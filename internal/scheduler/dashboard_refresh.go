// Package scheduler contém os serviços de agendamento de atualização do dashboard
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

// SnapshotSource executa o pipeline de métricas completo
type SnapshotSource interface {
	Snapshot(ctx context.Context) *domain.Snapshot
}

type DashboardRefreshConfig struct {
	Interval    time.Duration
	SyncEnabled bool
}

// DashboardRefreshService recalcula periodicamente o snapshot exibido pelo
// dashboard e guarda o último resultado
type DashboardRefreshService struct {
	scheduler           *gocron.Scheduler
	source              SnapshotSource
	config              DashboardRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	snapshotMutex       sync.RWMutex
	current             *domain.Snapshot
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	refreshCount        int
}

func NewDashboardRefreshService(source SnapshotSource, cfg config.Dashboard) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		Interval:    time.Duration(cfg.RefreshSeconds) * time.Second,
		SyncEnabled: cfg.RefreshEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"interval": refreshConfig.Interval.String(),
		"enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		source:    source,
		config:    refreshConfig,
	}
}

func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização periódica do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval", s.config.Interval.String()).Info("Iniciando atualização periódica do dashboard")

	_, err := s.scheduler.Every(s.config.Interval).Do(func() {
		s.Refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando atualização periódica do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh recalcula o snapshot. Se já houver uma atualização em andamento,
// devolve o snapshot atual sem recalcular.
func (s *DashboardRefreshService) Refresh(ctx context.Context) *domain.Snapshot {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do dashboard já está em execução")
		return s.Current()
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.refreshCount++
		s.syncMutex.Unlock()
	}()

	snapshot := s.source.Snapshot(ctx)

	s.snapshotMutex.Lock()
	s.current = snapshot
	s.snapshotMutex.Unlock()

	logrus.WithField("session_id", snapshot.SessionID).Info("Snapshot do dashboard atualizado")

	return snapshot
}

// Current retorna o último snapshot calculado, ou nil antes da primeira atualização
func (s *DashboardRefreshService) Current() *domain.Snapshot {
	s.snapshotMutex.RLock()
	defer s.snapshotMutex.RUnlock()
	return s.current
}

// Ensure devolve o snapshot atual, calculando o primeiro se necessário
func (s *DashboardRefreshService) Ensure(ctx context.Context) *domain.Snapshot {
	if current := s.Current(); current != nil {
		return current
	}
	return s.Refresh(ctx)
}

// TriggerManualSync inicia manualmente uma atualização em segundo plano
func (s *DashboardRefreshService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do dashboard")
	go s.Refresh(context.WithoutCancel(ctx))

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval":          s.config.Interval.String(),
		"sync_running":           s.syncRunning,
		"refresh_count":          s.refreshCount,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
