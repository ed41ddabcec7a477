package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	DataDir  string
	BillsDir string
}

// Load reads an optional .env file, then builds Config with defaults
// overridden by environment variables.
func Load(logger *log.Logger) Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		if logger != nil {
			logger.Printf("config: could not load .env: %v", err)
		}
	}
	return Config{
		DataDir:  envOrDefault("POS_DATA_DIR", "data"),
		BillsDir: envOrDefault("POS_BILLS_DIR", "bills"),
	}
}

// ProductsFile is the path of the product collection file.
func (c Config) ProductsFile() string {
	return filepath.Join(c.DataDir, "products.csv")
}

// SalesFile is the path of the append-only sales ledger.
func (c Config) SalesFile() string {
	return filepath.Join(c.DataDir, "sales.csv")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
