package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
	cartsvc "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/cart"
	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/catalog"
	checkoutsvc "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/checkout"
	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/report"
)

type productStore interface {
	Load(ctx context.Context) ([]domain.Product, int, error)
}

// Deps are the services the shell drives.
type Deps struct {
	Products productStore
	Catalog  *catalog.Service
	Checkout *checkoutsvc.Service
	Reports  *report.Service
}

// Shell runs the interactive menus. All business decisions live in the
// services; the shell only prompts, validates raw input and prints.
type Shell struct {
	in   *bufio.Scanner
	out  io.Writer
	deps Deps
	done bool
}

func New(in io.Reader, out io.Writer, deps Deps) *Shell {
	return &Shell{
		in:   bufio.NewScanner(in),
		out:  out,
		deps: deps,
	}
}

// Run drives the main menu until the operator exits or input ends.
// Storage errors abort the shell and are returned to the caller.
func (s *Shell) Run(ctx context.Context) error {
	for !s.done {
		fmt.Fprintln(s.out, "\n=== Inventory & Billing System ===")
		fmt.Fprintln(s.out, "1. Product management")
		fmt.Fprintln(s.out, "2. Order processing")
		fmt.Fprintln(s.out, "3. Reports")
		fmt.Fprintln(s.out, "0. Exit")
		switch s.prompt("Choice: ") {
		case "1":
			if err := s.productMenu(ctx); err != nil {
				return err
			}
		case "2":
			if err := s.orderMenu(ctx); err != nil {
				return err
			}
		case "3":
			if err := s.reportsMenu(ctx); err != nil {
				return err
			}
		case "0":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			if !s.done {
				fmt.Fprintln(s.out, "Invalid choice.")
			}
		}
	}
	return nil
}

func (s *Shell) productMenu(ctx context.Context) error {
	for !s.done {
		fmt.Fprintln(s.out, "\n--- Product Management ---")
		fmt.Fprintln(s.out, "1. Add product")
		fmt.Fprintln(s.out, "2. Update product")
		fmt.Fprintln(s.out, "3. Delete product")
		fmt.Fprintln(s.out, "4. Search product")
		fmt.Fprintln(s.out, "5. List all products")
		fmt.Fprintln(s.out, "0. Back")
		var err error
		switch s.prompt("Choice: ") {
		case "1":
			err = s.addProduct(ctx)
		case "2":
			err = s.updateProduct(ctx)
		case "3":
			err = s.deleteProduct(ctx)
		case "4":
			err = s.searchProducts(ctx)
		case "5":
			err = s.listProducts(ctx)
		case "0":
			return nil
		default:
			if !s.done {
				fmt.Fprintln(s.out, "Invalid choice.")
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Shell) orderMenu(ctx context.Context) error {
	cart := cartsvc.New(s.deps.Products)
	for !s.done {
		fmt.Fprintln(s.out, "\n--- Order Processing ---")
		fmt.Fprintln(s.out, "1. Add item to cart")
		fmt.Fprintln(s.out, "2. Remove item from cart")
		fmt.Fprintln(s.out, "3. View cart")
		fmt.Fprintln(s.out, "4. Checkout")
		fmt.Fprintln(s.out, "0. Back (cart will be lost if not checked out)")
		switch s.prompt("Choice: ") {
		case "1":
			if err := s.addToCart(ctx, cart); err != nil {
				return err
			}
		case "2":
			s.removeFromCart(cart)
		case "3":
			s.viewCart(cart)
		case "4":
			completed, err := s.checkout(ctx, cart)
			if err != nil {
				return err
			}
			if completed {
				return nil
			}
		case "0":
			return nil
		default:
			if !s.done {
				fmt.Fprintln(s.out, "Invalid choice.")
			}
		}
	}
	return nil
}

func (s *Shell) reportsMenu(ctx context.Context) error {
	for !s.done {
		fmt.Fprintln(s.out, "\n--- Reports ---")
		fmt.Fprintln(s.out, "1. Total sales for a day")
		fmt.Fprintln(s.out, "2. Low-stock products")
		fmt.Fprintln(s.out, "0. Back")
		switch s.prompt("Choice: ") {
		case "1":
			if err := s.salesByDate(ctx); err != nil {
				return err
			}
		case "2":
			if err := s.lowStock(ctx); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			if !s.done {
				fmt.Fprintln(s.out, "Invalid choice.")
			}
		}
	}
	return nil
}

func (s *Shell) addProduct(ctx context.Context) error {
	name := s.prompt("Product name: ")
	if name == "" {
		fmt.Fprintln(s.out, "Name cannot be empty.")
		return nil
	}
	price, ok := ParsePrice(s.prompt("Price: "))
	if !ok {
		fmt.Fprintln(s.out, "Invalid numeric input.")
		return nil
	}
	stock, ok := ParseStock(s.prompt("Stock quantity: "))
	if !ok {
		fmt.Fprintln(s.out, "Invalid numeric input.")
		return nil
	}
	p, err := s.deps.Catalog.Add(ctx, name, price, stock)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			fmt.Fprintln(s.out, err)
			return nil
		}
		return err
	}
	fmt.Fprintf(s.out, "Product added with ID %d.\n", p.ID)
	return nil
}

func (s *Shell) updateProduct(ctx context.Context) error {
	id, ok := ParseID(s.prompt("Enter product ID to update: "))
	if !ok {
		fmt.Fprintln(s.out, "Invalid ID.")
		return nil
	}
	current, err := s.deps.Catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(s.out, "Product ID not found.")
			return nil
		}
		return err
	}
	fmt.Fprintf(s.out, "Current: Name=%q, Price=%s, Stock=%d\n",
		current.Name, domain.Currency(current.Price), current.Stock)

	var in catalog.UpdateInput
	if raw := s.prompt("New name (leave blank to keep): "); raw != "" {
		in.Name = &raw
	}
	if raw := s.prompt("New price (leave blank to keep): "); raw != "" {
		price, ok := ParsePrice(raw)
		if !ok {
			fmt.Fprintln(s.out, "Invalid numeric input. Aborting update.")
			return nil
		}
		in.Price = &price
	}
	if raw := s.prompt("New stock (leave blank to keep): "); raw != "" {
		stock, ok := ParseStock(raw)
		if !ok {
			fmt.Fprintln(s.out, "Invalid numeric input. Aborting update.")
			return nil
		}
		in.Stock = &stock
	}
	if _, err := s.deps.Catalog.Update(ctx, id, in); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			fmt.Fprintln(s.out, err)
			return nil
		}
		return err
	}
	fmt.Fprintln(s.out, "Product updated.")
	return nil
}

func (s *Shell) deleteProduct(ctx context.Context) error {
	id, ok := ParseID(s.prompt("Enter product ID to delete: "))
	if !ok {
		fmt.Fprintln(s.out, "Invalid ID.")
		return nil
	}
	if err := s.deps.Catalog.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(s.out, "Product ID not found.")
			return nil
		}
		return err
	}
	fmt.Fprintln(s.out, "Product deleted.")
	return nil
}

func (s *Shell) searchProducts(ctx context.Context) error {
	query := s.prompt("Search by name or ID (enter text): ")
	results, err := s.deps.Catalog.Search(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			fmt.Fprintln(s.out, "Empty search.")
			return nil
		}
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No products found.")
		return nil
	}
	fmt.Fprintln(s.out, "Found products:")
	for _, p := range results {
		fmt.Fprintf(s.out, "ID: %d | %s | Price: %s | Stock: %d\n",
			p.ID, p.Name, domain.Currency(p.Price), p.Stock)
	}
	return nil
}

func (s *Shell) listProducts(ctx context.Context) error {
	products, err := s.deps.Catalog.List(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(s.out, "No products available.")
		return nil
	}
	fmt.Fprintf(s.out, "%-6s %-30s %10s %8s\n", "ID", "Name", "Price", "Stock")
	for _, p := range products {
		fmt.Fprintf(s.out, "%-6d %-30s %10s %8d\n", p.ID, p.Name, domain.Currency(p.Price), p.Stock)
	}
	return nil
}

func (s *Shell) addToCart(ctx context.Context, cart *cartsvc.Service) error {
	id, ok := ParseID(s.prompt("Product ID: "))
	if !ok {
		fmt.Fprintln(s.out, "Invalid input.")
		return nil
	}
	qty, ok := ParseQuantity(s.prompt("Quantity: "))
	if !ok {
		fmt.Fprintln(s.out, "Invalid input.")
		return nil
	}
	line, err := cart.AddItem(ctx, id, qty)
	switch {
	case err == nil:
		fmt.Fprintf(s.out, "Added %d x %s to cart.\n", qty, line.Name)
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(s.out, "Product ID not found.")
	case errors.Is(err, domain.ErrInvalidQuantity):
		fmt.Fprintln(s.out, "Quantity must be > 0.")
	case errors.Is(err, domain.ErrInsufficientStock):
		fmt.Fprintf(s.out, "%v.\n", err)
	default:
		return err
	}
	return nil
}

func (s *Shell) removeFromCart(cart *cartsvc.Service) {
	id, ok := ParseID(s.prompt("Product ID to remove: "))
	if !ok {
		fmt.Fprintln(s.out, "Invalid ID.")
		return
	}
	if err := cart.RemoveItem(id); err != nil {
		fmt.Fprintln(s.out, "Item not found in cart.")
		return
	}
	fmt.Fprintln(s.out, "Item removed from cart.")
}

func (s *Shell) viewCart(cart *cartsvc.Service) {
	if cart.IsEmpty() {
		fmt.Fprintln(s.out, "Cart is empty.")
		return
	}
	fmt.Fprintf(s.out, "%-6s %-30s %10s %6s %12s\n", "PID", "Name", "UnitPrice", "Qty", "LineTotal")
	for _, li := range cart.Items() {
		fmt.Fprintf(s.out, "%-6d %-30s %10s %6d %12s\n",
			li.ProductID, li.Name, domain.Currency(li.UnitPrice), li.Quantity, domain.Currency(li.LineTotal()))
	}
	fmt.Fprintf(s.out, "Subtotal: %s\n", domain.Currency(cart.Subtotal()))
}

// checkout reports whether the purchase completed (true returns the
// operator to the main menu, mirroring a finished sale).
func (s *Shell) checkout(ctx context.Context, cart *cartsvc.Service) (bool, error) {
	if cart.IsEmpty() {
		fmt.Fprintln(s.out, "Cart empty. Cannot checkout.")
		return false, nil
	}
	fmt.Fprintf(s.out, "Subtotal: %s\n", domain.Currency(cart.Subtotal()))

	pct := decimal.Zero
	if strings.EqualFold(s.prompt("Apply discount? (y/n): "), "y") {
		raw := s.prompt("Enter discount percent (e.g., 10 for 10%): ")
		pct = checkoutsvc.SanitizeDiscount(raw)
		if pct.IsZero() && strings.TrimSpace(raw) != "0" {
			fmt.Fprintln(s.out, "Invalid percent. No discount applied.")
		}
	}

	sum := checkoutsvc.Summarize(cart.Cart(), pct)
	confirm := s.prompt(fmt.Sprintf("Total after %s%% discount is %s. Confirm purchase? (y/n): ",
		sum.DiscountPct.String(), domain.Currency(sum.Total)))
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(s.out, "Checkout cancelled.")
		return false, nil
	}

	bill, paths, err := s.deps.Checkout.Checkout(ctx, cart.Cart(), pct)
	if err != nil {
		return false, fmt.Errorf("checkout: %w", err)
	}
	cart.Clear()
	fmt.Fprintf(s.out, "Checkout complete. Bill %s saved: %s and %s\n", bill.ID, paths.Text, paths.CSV)
	return true, nil
}

func (s *Shell) salesByDate(ctx context.Context) error {
	raw := s.prompt("Enter date (YYYY-MM-DD) or leave blank for today: ")
	date, ok := ParseDate(raw, time.Now())
	if !ok {
		fmt.Fprintln(s.out, "Invalid date.")
		return nil
	}
	sum, err := s.deps.Reports.SalesByDate(ctx, date)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Date: %s | Bills: %d | Total Sales: %s\n", sum.Date, sum.Bills, domain.Currency(sum.Total))
	return nil
}

func (s *Shell) lowStock(ctx context.Context) error {
	threshold, ok := ParseThreshold(s.prompt("Enter low-stock threshold (e.g., 5): "))
	if !ok {
		fmt.Fprintln(s.out, "Invalid threshold.")
		return nil
	}
	low, err := s.deps.Reports.LowStock(ctx, threshold)
	if err != nil {
		return err
	}
	if len(low) == 0 {
		fmt.Fprintln(s.out, "No low-stock products.")
		return nil
	}
	fmt.Fprintln(s.out, "Low-stock products:")
	for _, p := range low {
		fmt.Fprintf(s.out, "ID:%d | %s | Stock: %d\n", p.ID, p.Name, p.Stock)
	}
	return nil
}

func (s *Shell) prompt(label string) string {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		s.done = true
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}
