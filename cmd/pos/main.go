package main

import (
	"context"
	"log"
	"os"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/cli"
	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/config"
	productrepo "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/repository/product"
	salesrepo "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/repository/sales"
	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/catalog"
	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/checkout"
	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/report"
)

func main() {
	logger := log.New(os.Stderr, "[pos] ", log.LstdFlags)
	cfg := config.Load(logger)
	ctx := context.Background()

	products := productrepo.NewCSV(cfg.ProductsFile(), logger)
	sales := salesrepo.NewCSV(cfg.SalesFile(), cfg.BillsDir, logger)
	if err := products.Init(ctx); err != nil {
		logger.Fatalf("init product store: %v", err)
	}
	if err := sales.Init(ctx); err != nil {
		logger.Fatalf("init sales store: %v", err)
	}

	shell := cli.New(os.Stdin, os.Stdout, cli.Deps{
		Products: products,
		Catalog:  catalog.New(products, logger),
		Checkout: checkout.New(products, sales, logger),
		Reports:  report.New(products, sales),
	})
	if err := shell.Run(ctx); err != nil {
		logger.Fatalf("shell: %v", err)
	}
}
