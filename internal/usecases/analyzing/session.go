package analyzing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/repository"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

// Session guarda as métricas calculadas para um instante de referência fixo.
// Não é segura para uso concorrente; quem compartilha resultados compartilha o
// Snapshot devolvido por RunAll.
type Session struct {
	repo      repository.MetricsRepository
	cfg       config.Analytics
	reference time.Time
	snapshot  domain.Snapshot
}

func (s *Session) ID() string {
	return s.snapshot.SessionID
}

func (s *Session) Reference() time.Time {
	return s.reference
}

// CustomerValues lista um registro por cliente com CLV e status
func (s *Session) CustomerValues(ctx context.Context) []domain.CustomerValue {
	if s.snapshot.CustomerValues != nil {
		return s.snapshot.CustomerValues
	}

	rows, err := s.repo.CustomerValues(ctx, s.reference)
	if err != nil {
		s.logQueryError(err, "customer_values")
		rows = nil
	}

	values := make([]domain.CustomerValue, 0, len(rows))
	for _, row := range rows {
		values = append(values, DeriveCustomerValue(row))
	}

	s.snapshot.CustomerValues = values
	logrus.WithField("rows", len(values)).Debug("Métricas de clientes carregadas")
	return values
}

func (s *Session) RestaurantPerformance(ctx context.Context) []domain.RestaurantPerformance {
	if s.snapshot.RestaurantPerformance != nil {
		return s.snapshot.RestaurantPerformance
	}

	rows, err := s.repo.RestaurantPerformance(ctx)
	if err != nil {
		s.logQueryError(err, "restaurant_performance")
		rows = nil
	}

	s.snapshot.RestaurantPerformance = RankRestaurants(rows)
	return s.snapshot.RestaurantPerformance
}

func (s *Session) ItemPerformance(ctx context.Context) []domain.ItemPerformance {
	if s.snapshot.ItemPerformance != nil {
		return s.snapshot.ItemPerformance
	}

	rows, err := s.repo.ItemPerformance(ctx)
	if err != nil {
		s.logQueryError(err, "item_performance")
		rows = nil
	}

	s.snapshot.ItemPerformance = RankItems(rows)
	return s.snapshot.ItemPerformance
}

// TimeBuckets carrega os pedidos concluídos da janela móvel, contada a partir
// do início do dia de referência
func (s *Session) TimeBuckets(ctx context.Context) []domain.TimeBucket {
	if s.snapshot.TimeBuckets != nil {
		return s.snapshot.TimeBuckets
	}

	since := domain.NewDate(s.reference).AddDays(-s.cfg.WindowDays).Time

	rows, err := s.repo.TimeBuckets(ctx, since)
	if err != nil {
		s.logQueryError(err, "time_buckets")
	}
	if rows == nil {
		rows = make([]domain.TimeBucket, 0)
	}

	s.snapshot.TimeBuckets = rows
	return rows
}

func (s *Session) Segmentation(ctx context.Context) *domain.Segmentation {
	if s.snapshot.Segmentation == nil {
		s.snapshot.Segmentation = Segment(s.CustomerValues(ctx), s.cfg.Clusters, s.cfg.Seed)
	}
	return s.snapshot.Segmentation
}

func (s *Session) Forecast(ctx context.Context) *domain.RevenueForecast {
	if s.snapshot.Forecast == nil {
		s.snapshot.Forecast = Forecast(s.TimeBuckets(ctx), s.cfg.ForecastDays)
		logrus.WithFields(logrus.Fields{
			"days":      s.cfg.ForecastDays,
			"r_squared": s.snapshot.Forecast.RSquared,
			"method":    s.snapshot.Forecast.Method,
		}).Info("Previsão de receita calculada")
	}
	return s.snapshot.Forecast
}

func (s *Session) PeakPatterns(ctx context.Context) *domain.PeakPatterns {
	if s.snapshot.PeakPatterns == nil {
		s.snapshot.PeakPatterns = PeakPatterns(s.TimeBuckets(ctx))
	}
	return s.snapshot.PeakPatterns
}

// Operations reúne os indicadores do topo do dashboard e as distribuições da
// aba de operações
func (s *Session) Operations(ctx context.Context) *domain.OperationalStats {
	if s.snapshot.Operations != nil {
		return s.snapshot.Operations
	}

	stats := &domain.OperationalStats{}

	activeSince := s.reference.AddDate(0, 0, -s.cfg.ActiveDays)
	kpis, err := s.repo.KPISummary(ctx, activeSince)
	if err != nil {
		s.logQueryError(err, "kpi_summary")
		kpis = domain.KPISummary{}
	}
	stats.KPIs = kpis

	if stats.StatusCounts, err = s.repo.StatusDistribution(ctx); err != nil {
		s.logQueryError(err, "status_distribution")
	}
	if stats.DeliveryTimes, err = s.repo.DeliveryTimes(ctx); err != nil {
		s.logQueryError(err, "delivery_times")
	}
	if stats.PaymentMethods, err = s.repo.PaymentMethodDistribution(ctx); err != nil {
		s.logQueryError(err, "payment_methods")
	}

	if stats.StatusCounts == nil {
		stats.StatusCounts = make([]domain.CategoryCount, 0)
	}
	if stats.DeliveryTimes == nil {
		stats.DeliveryTimes = make([]float64, 0)
	}
	if stats.PaymentMethods == nil {
		stats.PaymentMethods = make([]domain.CategoryCount, 0)
	}

	s.snapshot.Operations = stats
	return stats
}

// Insights depende das métricas de clientes, restaurantes, itens e picos
func (s *Session) Insights(ctx context.Context) []string {
	if s.snapshot.Insights != nil {
		return s.snapshot.Insights
	}

	s.CustomerValues(ctx)
	s.RestaurantPerformance(ctx)
	s.ItemPerformance(ctx)
	s.PeakPatterns(ctx)

	s.snapshot.Insights = Insights(&s.snapshot)
	return s.snapshot.Insights
}

// RunAll calcula todas as métricas e devolve uma cópia do snapshot
func (s *Session) RunAll(ctx context.Context) *domain.Snapshot {
	started := time.Now()

	s.CustomerValues(ctx)
	s.RestaurantPerformance(ctx)
	s.ItemPerformance(ctx)
	s.TimeBuckets(ctx)
	s.Segmentation(ctx)
	s.Forecast(ctx)
	s.PeakPatterns(ctx)
	s.Operations(ctx)
	s.Insights(ctx)

	logrus.WithFields(logrus.Fields{
		"session_id": s.snapshot.SessionID,
		"duration":   time.Since(started).String(),
	}).Info("Pipeline de análise concluído")

	snapshot := s.snapshot
	return &snapshot
}

func (s *Session) logQueryError(err error, metric string) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"session_id": s.snapshot.SessionID,
		"metric":     metric,
	}).Error("Erro ao consultar métrica, seguindo com resultado vazio")
}
