// Package reporting grava o resultado de uma sessão de análise no diretório de
// saída: uma planilha CSV por tabela, o resumo de insights e a pasta XLSX
package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

const (
	CustomerAnalyticsFile     = "customer_analytics.csv"
	CustomerSegmentsFile      = "customer_segments.csv"
	RestaurantPerformanceFile = "restaurant_performance.csv"
	MenuAnalyticsFile         = "menu_analytics.csv"
	TimeSeriesFile            = "time_series.csv"
	RevenueHistoryFile        = "revenue_history.csv"
	RevenueForecastFile       = "revenue_forecast.csv"
	PeakHoursFile             = "peak_hours.csv"
	PeakDaysFile              = "peak_days.csv"
	InsightsFile              = "business_insights.txt"
	WorkbookFile              = "analytics_report.xlsx"
)

const insightsTitle = "Food Delivery - Insights do Negócio"

type Exporter interface {
	Export(snapshot *domain.Snapshot) (*ExportReport, error)
}

type ExportReport struct {
	OutputDir string
	Files     []string
}

type FileExporter struct {
	outputDir string
	xlsx      bool
	now       func() time.Time
}

func NewExporter(cfg config.Analytics) *FileExporter {
	return &FileExporter{
		outputDir: cfg.OutputDir,
		xlsx:      cfg.ExportXLSX,
		now:       time.Now,
	}
}

// WithClock fixa o horário gravado no resumo de insights
func (e *FileExporter) WithClock(now func() time.Time) *FileExporter {
	e.now = now
	return e
}

// Export grava todas as tabelas do snapshot. Tabelas vazias geram um CSV só
// com o cabeçalho.
func (e *FileExporter) Export(snapshot *domain.Snapshot) (*ExportReport, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar diretório de saída %s", e.outputDir)
	}

	report := &ExportReport{OutputDir: e.outputDir}
	tables := csvTables(snapshot)

	for _, table := range tables {
		path := filepath.Join(e.outputDir, table.file)
		if err := writeCSV(path, table.rows); err != nil {
			return report, err
		}
		report.Files = append(report.Files, path)

		logrus.WithFields(logrus.Fields{
			"file": path,
		}).Info("Tabela exportada")
	}

	insightsPath := filepath.Join(e.outputDir, InsightsFile)
	if err := e.writeInsights(insightsPath, snapshot); err != nil {
		return report, err
	}
	report.Files = append(report.Files, insightsPath)

	if e.xlsx {
		workbookPath := filepath.Join(e.outputDir, WorkbookFile)
		if err := writeWorkbook(workbookPath, snapshot); err != nil {
			return report, err
		}
		report.Files = append(report.Files, workbookPath)
	}

	return report, nil
}

type csvTable struct {
	file string
	rows any
}

// csvTables garante slices não nulos para que o cabeçalho seja sempre escrito
func csvTables(s *domain.Snapshot) []csvTable {
	customers := orEmpty(s.CustomerValues)
	restaurants := orEmpty(s.RestaurantPerformance)
	items := orEmpty(s.ItemPerformance)
	buckets := orEmpty(s.TimeBuckets)

	segments := make([]domain.CustomerSegment, 0)
	if s.Segmentation != nil {
		segments = orEmpty(s.Segmentation.Customers)
	}

	history := make([]domain.DailyRevenue, 0)
	forecast := make([]domain.ForecastPoint, 0)
	if s.Forecast != nil {
		history = orEmpty(s.Forecast.Historical)
		forecast = orEmpty(s.Forecast.Forecast)
	}

	hourly := make([]domain.HourlySummary, 0)
	daily := make([]domain.WeekdaySummary, 0)
	if s.PeakPatterns != nil {
		hourly = orEmpty(s.PeakPatterns.Hourly)
		daily = orEmpty(s.PeakPatterns.Daily)
	}

	return []csvTable{
		{file: CustomerAnalyticsFile, rows: &customers},
		{file: CustomerSegmentsFile, rows: &segments},
		{file: RestaurantPerformanceFile, rows: &restaurants},
		{file: MenuAnalyticsFile, rows: &items},
		{file: TimeSeriesFile, rows: &buckets},
		{file: RevenueHistoryFile, rows: &history},
		{file: RevenueForecastFile, rows: &forecast},
		{file: PeakHoursFile, rows: &hourly},
		{file: PeakDaysFile, rows: &daily},
	}
}

func writeCSV(path string, rows any) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar %s", path)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return errors.Wrapf(err, "erro ao escrever %s", path)
	}

	return nil
}

func (e *FileExporter) writeInsights(path string, snapshot *domain.Snapshot) error {
	var b strings.Builder
	b.WriteString(insightsTitle + "\n")
	b.WriteString(strings.Repeat("=", len([]rune(insightsTitle))) + "\n\n")
	fmt.Fprintf(&b, "Gerado em: %s\n", e.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Sessão: %s\n\n", snapshot.SessionID)
	for _, insight := range snapshot.Insights {
		b.WriteString(insight + "\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrapf(err, "erro ao escrever %s", path)
	}

	return nil
}

func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return make([]T, 0)
	}
	return rows
}
