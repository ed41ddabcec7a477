package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/config"
	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/importer"
	productrepo "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/repository/product"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to supplier restock CSV (columns name,price,stock)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "[importer] ", log.LstdFlags)
	cfg := config.Load(logger)
	ctx := context.Background()

	store := productrepo.NewCSV(cfg.ProductsFile(), logger)
	if err := store.Init(ctx); err != nil {
		logger.Fatalf("init product store: %v", err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	start := time.Now()
	res, err := importer.NewCSVImporter(f, store, logger).Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}
	fmt.Printf("Imported %d new, restocked %d, skipped %d rows in %s\n",
		res.Created, res.Merged, res.Skipped, time.Since(start).Truncate(time.Millisecond))
}
