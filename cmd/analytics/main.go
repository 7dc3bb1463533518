package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/database"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/repository"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	"github.com/vfg2006/food-delivery-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/food-delivery-analytics/internal/usecases/reporting"
	"github.com/vfg2006/food-delivery-analytics/pkg/log"
	"github.com/vfg2006/food-delivery-analytics/pkg/utils"
)

func main() {
	flags := pflag.NewFlagSet("analytics", pflag.ExitOnError)
	flags.String("database-driver", config.DriverSQLite, "driver do banco (sqlite ou postgres)")
	flags.String("database-path", "database/food_delivery.db", "arquivo sqlite gerado pelo gerador")
	flags.String("analytics-output-dir", "outputs", "diretório dos arquivos exportados")
	flags.Int("analytics-clusters", 4, "quantidade de segmentos de clientes")
	flags.Int("analytics-forecast-days", 7, "dias de previsão de receita")
	flags.Int64("analytics-seed", 42, "semente da segmentação")
	flags.Bool("analytics-export-xlsx", true, "exporta também a planilha xlsx")
	flags.String("reference-date", "", "data de referência da análise (padrão: agora)")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.NewConfig(flags)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}
	log.Setup(cfg.App.LogLevel)

	referenceFlag, _ := flags.GetString("reference-date")
	reference, err := utils.ParseReferenceTime(referenceFlag)
	if err != nil {
		logrus.WithError(err).Fatal("Data de referência inválida, use AAAA-MM-DD")
	}

	if err := run(context.Background(), cfg, reference); err != nil {
		fail(err)
	}
}

func run(ctx context.Context, cfg *config.Config, reference time.Time) error {
	fmt.Println("📊 Food Delivery - Análise de Dados")
	fmt.Println("===================================")

	conn, err := database.NewConnection(ctx, cfg.Database, database.MustExist())
	if err != nil {
		return err
	}
	defer conn.Close()

	engine := analyzing.NewEngine(repository.NewMetricsRepository(conn), cfg.Analytics)
	if !reference.IsZero() {
		engine.WithClock(func() time.Time { return reference })
	}

	session := engine.NewSession()
	logrus.WithField("session_id", session.ID()).Debug("Sessão de análise aberta")

	fmt.Printf("👥 Clientes analisados: %d\n", len(session.CustomerValues(ctx)))
	fmt.Printf("🏪 Restaurantes analisados: %d\n", len(session.RestaurantPerformance(ctx)))
	fmt.Printf("🍽️  Itens de cardápio analisados: %d\n", len(session.ItemPerformance(ctx)))

	segmentation := session.Segmentation(ctx)
	if segmentation.Clustered {
		fmt.Printf("🎯 Segmentação em %d grupos\n", segmentation.Clusters)
	} else {
		fmt.Println("🎯 Segmentação indisponível: clientes ativos insuficientes")
	}

	forecast := session.Forecast(ctx)
	fmt.Printf("📈 Previsão de %d dias (%s, R² %.3f)\n", len(forecast.Forecast), forecast.Method, forecast.RSquared)

	peaks := session.PeakPatterns(ctx)
	fmt.Printf("⏰ Horários de pico: %v\n", peaks.PeakHours)

	snapshot := session.RunAll(ctx)

	report, err := reporting.NewExporter(cfg.Analytics).Export(snapshot)
	if err != nil {
		return err
	}
	fmt.Printf("💾 %d arquivos gravados em %s\n", len(report.Files), report.OutputDir)

	fmt.Println()
	for _, insight := range snapshot.Insights {
		fmt.Println(insight)
	}

	fmt.Println("✅ Análise concluída")
	return nil
}

func fail(err error) {
	entry := logrus.WithError(err)
	if hint := database.Hint(err); hint != "" {
		entry = entry.WithField("hint", hint)
		fmt.Fprintf(os.Stderr, "❌ %v\n   %s\n", err, hint)
	}
	entry.Fatal("Falha ao executar a análise")
}
