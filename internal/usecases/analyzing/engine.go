// Package analyzing implementa o motor de métricas: agregações sobre o banco,
// segmentação de clientes, previsão de receita, picos de demanda e insights
package analyzing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/repository"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
	"github.com/vfg2006/food-delivery-analytics/pkg/utils"
)

// Analyzer abre sessões de análise. Cada sessão calcula as métricas sob demanda
// e as mantém em cache até ser descartada.
type Analyzer interface {
	NewSession() *Session
	Snapshot(ctx context.Context) *domain.Snapshot
}

type Engine struct {
	repo repository.MetricsRepository
	cfg  config.Analytics
	now  func() time.Time
}

func NewEngine(repo repository.MetricsRepository, cfg config.Analytics) *Engine {
	return &Engine{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

// WithClock fixa o relógio usado como referência das sessões
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func (e *Engine) NewSession() *Session {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar id da sessão de análise")
	}

	reference := e.now().UTC()

	return &Session{
		repo:      e.repo,
		cfg:       e.cfg,
		reference: reference,
		snapshot: domain.Snapshot{
			SessionID:   id,
			GeneratedAt: reference,
		},
	}
}

// Snapshot executa o pipeline completo em uma sessão nova
func (e *Engine) Snapshot(ctx context.Context) *domain.Snapshot {
	return e.NewSession().RunAll(ctx)
}
