package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
	productrepo "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/repository/product"
	salesrepo "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/repository/sales"
	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/catalog"
	checkoutsvc "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/checkout"
	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/report"
)

type fixture struct {
	shell    *Shell
	out      *bytes.Buffer
	products productrepo.Store
	billsDir string
}

func newFixture(t *testing.T, script string) *fixture {
	t.Helper()
	dir := t.TempDir()
	billsDir := filepath.Join(dir, "bills")

	products := productrepo.NewCSV(filepath.Join(dir, "products.csv"), nil)
	sales := salesrepo.NewCSV(filepath.Join(dir, "sales.csv"), billsDir, nil)
	if err := products.Init(context.Background()); err != nil {
		t.Fatalf("init products: %v", err)
	}
	if err := sales.Init(context.Background()); err != nil {
		t.Fatalf("init sales: %v", err)
	}
	if err := products.Save(context.Background(), []domain.Product{
		{ID: 1, Name: "Notebook A5", Price: decimal.RequireFromString("100.00"), Stock: 10},
	}); err != nil {
		t.Fatalf("seed products: %v", err)
	}

	out := &bytes.Buffer{}
	shell := New(strings.NewReader(script), out, Deps{
		Products: products,
		Catalog:  catalog.New(products, nil),
		Checkout: checkoutsvc.New(products, sales, nil),
		Reports:  report.New(products, sales),
	})
	return &fixture{shell: shell, out: out, products: products, billsDir: billsDir}
}

func TestShellCheckoutFlow(t *testing.T) {
	today := time.Now().Format(report.DateFormat)
	script := strings.Join([]string{
		"2", // order processing
		"1", "1", "3", // add item: product 1, qty 3
		"3",           // view cart
		"4",           // checkout
		"y", "10",     // apply 10% discount
		"y",           // confirm
		"3",           // reports
		"1", "",       // sales for today
		"0",           // back
		"0",           // exit
	}, "\n") + "\n"

	f := newFixture(t, script)
	if err := f.shell.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	output := f.out.String()

	if !strings.Contains(output, "Added 3 x Notebook A5 to cart.") {
		t.Fatalf("missing add confirmation:\n%s", output)
	}
	if !strings.Contains(output, "Checkout complete.") {
		t.Fatalf("missing checkout confirmation:\n%s", output)
	}
	if !strings.Contains(output, "Date: "+today+" | Bills: 1 | Total Sales: ₹270.00") {
		t.Fatalf("missing sales report line:\n%s", output)
	}

	products, _, err := f.products.Load(context.Background())
	if err != nil {
		t.Fatalf("load products: %v", err)
	}
	if products[0].Stock != 7 {
		t.Fatalf("expected stock 7 after checkout, got %d", products[0].Stock)
	}

	bills, err := os.ReadDir(f.billsDir)
	if err != nil {
		t.Fatalf("read bills dir: %v", err)
	}
	if len(bills) != 2 {
		t.Fatalf("expected txt and csv bill, got %d files", len(bills))
	}
}

func TestShellCheckoutCancelled(t *testing.T) {
	script := strings.Join([]string{
		"2",
		"1", "1", "2", // add item: product 1, qty 2
		"4",  // checkout
		"n",  // no discount
		"n",  // decline confirmation
		"0",  // back
		"0",  // exit
	}, "\n") + "\n"

	f := newFixture(t, script)
	if err := f.shell.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(f.out.String(), "Checkout cancelled.") {
		t.Fatalf("missing cancellation message:\n%s", f.out.String())
	}

	products, _, err := f.products.Load(context.Background())
	if err != nil {
		t.Fatalf("load products: %v", err)
	}
	if products[0].Stock != 10 {
		t.Fatalf("cancelled checkout must not touch stock, got %d", products[0].Stock)
	}
	bills, err := os.ReadDir(f.billsDir)
	if err != nil {
		t.Fatalf("read bills dir: %v", err)
	}
	if len(bills) != 0 {
		t.Fatalf("cancelled checkout must not write bills, got %d files", len(bills))
	}
}

func TestShellDeclinesInsufficientStock(t *testing.T) {
	script := strings.Join([]string{
		"2",
		"1", "1", "50", // qty beyond stock
		"0",
		"0",
	}, "\n") + "\n"

	f := newFixture(t, script)
	if err := f.shell.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(f.out.String(), "insufficient stock: available 10") {
		t.Fatalf("missing decline message:\n%s", f.out.String())
	}
}

func TestShellExitsOnEOF(t *testing.T) {
	f := newFixture(t, "2\n") // input ends inside the order menu
	if err := f.shell.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestShellProductManagement(t *testing.T) {
	script := strings.Join([]string{
		"1",                          // product management
		"1", "Desk Lamp", "799", "12", // add
		"4", "lamp", // search by name
		"5", // list
		"0",
		"0",
	}, "\n") + "\n"

	f := newFixture(t, script)
	if err := f.shell.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	output := f.out.String()
	if !strings.Contains(output, "Product added with ID 2.") {
		t.Fatalf("missing add confirmation:\n%s", output)
	}
	if !strings.Contains(output, "Found products:") {
		t.Fatalf("missing search results:\n%s", output)
	}
	if !strings.Contains(output, "Desk Lamp") {
		t.Fatalf("missing listed product:\n%s", output)
	}
}
