package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POS_DATA_DIR", "")
	t.Setenv("POS_BILLS_DIR", "")
	cfg := Load(nil)
	if cfg.DataDir != "data" || cfg.BillsDir != "bills" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ProductsFile() != filepath.Join("data", "products.csv") {
		t.Fatalf("unexpected products path: %s", cfg.ProductsFile())
	}
	if cfg.SalesFile() != filepath.Join("data", "sales.csv") {
		t.Fatalf("unexpected sales path: %s", cfg.SalesFile())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("POS_DATA_DIR", "/srv/pos/data")
	t.Setenv("POS_BILLS_DIR", "/srv/pos/bills")
	cfg := Load(nil)
	if cfg.DataDir != "/srv/pos/data" || cfg.BillsDir != "/srv/pos/bills" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.ProductsFile() != filepath.Join("/srv/pos/data", "products.csv") {
		t.Fatalf("unexpected products path: %s", cfg.ProductsFile())
	}
}
