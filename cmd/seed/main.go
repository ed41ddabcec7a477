package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/config"
	productrepo "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/repository/product"
	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/seed"
)

func main() {
	logger := log.New(os.Stderr, "[seed] ", log.LstdFlags)
	cfg := config.Load(logger)
	ctx := context.Background()

	store := productrepo.NewCSV(cfg.ProductsFile(), logger)
	if err := store.Init(ctx); err != nil {
		logger.Fatalf("init product store: %v", err)
	}

	added, err := seed.Apply(ctx, store)
	if err != nil {
		logger.Fatalf("seed: %v", err)
	}
	fmt.Printf("Seeded %d products into %s\n", added, cfg.ProductsFile())
}
