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
	"github.com/vfg2006/food-delivery-analytics/internal/usecases/generating"
	"github.com/vfg2006/food-delivery-analytics/pkg/log"
	"github.com/vfg2006/food-delivery-analytics/pkg/utils"
)

func main() {
	flags := pflag.NewFlagSet("generator", pflag.ExitOnError)
	flags.String("database-driver", config.DriverSQLite, "driver do banco (sqlite ou postgres)")
	flags.String("database-path", "database/food_delivery.db", "arquivo sqlite a ser recriado")
	flags.String("database-schema-file", "", "arquivo DDL alternativo ao schema embutido")
	flags.Int64("generator-seed", 42, "semente do gerador")
	flags.Int("generator-customers", 500, "quantidade de clientes")
	flags.Int("generator-restaurants", 25, "quantidade de restaurantes")
	flags.Int("generator-orders", 2000, "quantidade de pedidos")
	flags.String("reference-date", "", "data de referência da geração (padrão: agora)")
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
	fmt.Println("🍔 Food Delivery - Gerador de Dados")
	fmt.Println("==================================")

	fmt.Println("🗑️  Removendo banco anterior...")
	removed, err := database.Reset(ctx, cfg.Database)
	if err != nil {
		return err
	}
	if removed {
		fmt.Println("   banco anterior removido")
	}

	fmt.Println("🏗️  Criando schema...")
	ddl, err := database.LoadSchema(cfg.Database.SchemaFile)
	if err != nil {
		return err
	}

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.ApplySchema(ctx, ddl); err != nil {
		return err
	}

	service := generating.NewService(repository.NewDatasetRepository(conn), cfg.Generator)
	if !reference.IsZero() {
		service.WithClock(func() time.Time { return reference })
	}

	fmt.Printf("🎲 Gerando %d clientes, %d restaurantes e %d pedidos (semente %d)...\n",
		cfg.Generator.Customers, cfg.Generator.Restaurants, cfg.Generator.Orders, cfg.Generator.Seed)
	report, err := service.Populate(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("   %d itens de cardápio, %d pedidos, %d itens de pedido em %s\n",
		report.MenuItems, report.Orders, report.OrderItems, report.Duration.Round(time.Millisecond))
	if report.SkippedOrders > 0 {
		fmt.Printf("   ⚠️  %d pedidos descartados (restaurante sem itens disponíveis)\n", report.SkippedOrders)
	}

	fmt.Println("🔍 Verificando tabelas...")
	verification, err := service.Verify(ctx)
	if err != nil {
		return err
	}
	for _, count := range verification.Counts {
		fmt.Printf("   %-12s %6d linhas\n", count.Table, count.Rows)
	}

	fmt.Println("🏆 Maiores clientes:")
	for _, c := range verification.TopCustomers {
		fmt.Printf("   %-28s %3d pedidos  $%.2f\n", c.Name, c.CompletedOrders, c.TotalSpent)
	}

	fmt.Printf("✅ Banco de dados pronto (%s)\n", target(cfg.Database))
	return nil
}

func target(db config.Database) string {
	if db.Driver == config.DriverSQLite {
		return db.Path
	}
	return db.URL
}

func fail(err error) {
	entry := logrus.WithError(err)
	if hint := database.Hint(err); hint != "" {
		entry = entry.WithField("hint", hint)
		fmt.Fprintf(os.Stderr, "❌ %v\n   %s\n", err, hint)
	}
	entry.Fatal("Falha ao gerar o banco de dados")
}
