package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/database"
	"github.com/vfg2006/food-delivery-analytics/infrastructure/repository"
	"github.com/vfg2006/food-delivery-analytics/internal/api"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	"github.com/vfg2006/food-delivery-analytics/internal/scheduler"
	"github.com/vfg2006/food-delivery-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/food-delivery-analytics/internal/usecases/presenting"
	"github.com/vfg2006/food-delivery-analytics/pkg/log"
)

func main() {
	flags := pflag.NewFlagSet("dashboard", pflag.ExitOnError)
	flags.String("host", "localhost", "endereço do servidor")
	flags.String("port", "8050", "porta do servidor")
	flags.String("database-driver", config.DriverSQLite, "driver do banco (sqlite ou postgres)")
	flags.String("database-path", "database/food_delivery.db", "arquivo sqlite gerado pelo gerador")
	flags.Int("analytics-clusters", 4, "quantidade de segmentos de clientes")
	flags.Int("analytics-forecast-days", 7, "dias de previsão de receita")
	flags.Int("dashboard-refresh-seconds", 30, "intervalo de atualização automática")
	flags.Bool("dashboard-refresh-enabled", true, "habilita a atualização periódica")
	flags.Bool("dashboard-refresh-on-navigate", true, "recalcula as métricas a cada troca de aba")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.NewConfig(flags)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}
	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := connect(ctx, cfg.Database)
	defer conn.Close()

	engine := analyzing.NewEngine(repository.NewMetricsRepository(conn), cfg.Analytics)

	refreshService := scheduler.NewDashboardRefreshService(engine, cfg.Dashboard)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	} else {
		logrus.Info("Agendador de atualização do dashboard iniciado com sucesso")
	}

	// primeiro snapshot antes de aceitar requisições
	refreshService.Refresh(ctx)

	server, err := api.New(cfg, refreshService, presenting.NewTabPresenter())
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Printf("🚀 Dashboard disponível em http://%s\n", server.Addr())

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// connect abre o banco gerado; sem ele o dashboard não tem o que mostrar
func connect(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig, database.MustExist())
	if err != nil {
		entry := logrus.WithError(err)
		if hint := database.Hint(err); hint != "" {
			entry = entry.WithField("hint", hint)
			fmt.Fprintf(os.Stderr, "❌ %v\n   %s\n", err, hint)
		}
		entry.Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco estabelecida com sucesso")
	return conn
}
