// Package ui is a minimal line-oriented presentation driver. The real
// storefront front-end is an immediate-mode GUI living outside this module;
// this driver exercises the same store transitions so the binary is usable
// end-to-end. It only polls the store and never blocks on the fetch worker.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	checkoutapp "github.com/omerlior/storefront/internal/checkout/application"
	"github.com/omerlior/storefront/internal/checkout/domain"
	"github.com/omerlior/storefront/internal/store"
)

type Driver struct {
	log      *slog.Logger
	store    *store.Store
	checkout *checkoutapp.Service
	in       io.Reader
	out      io.Writer
}

func NewDriver(log *slog.Logger, st *store.Store, checkout *checkoutapp.Service, in io.Reader, out io.Writer) *Driver {
	return &Driver{log: log, store: st, checkout: checkout, in: in, out: out}
}

// Run reads commands until EOF, "quit" or context cancellation.
func (d *Driver) Run(ctx context.Context) {
	d.printf("storefront ready, type 'help' for commands\n")
	scanner := bufio.NewScanner(d.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return
		}
		d.dispatch(ctx, cmd, args)
		if msg, ok := d.store.ConsumeLastError(); ok {
			d.printf("! %s\n", msg)
		}
	}
}

func (d *Driver) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		d.printHelp()
	case "list":
		d.store.ShowCatalog()
		d.printCatalog()
	case "view":
		d.view(args)
	case "add":
		d.add(args)
	case "cart":
		d.store.ShowCart()
		d.printCart()
	case "remove":
		if id, ok := d.intArg(args, 0); ok {
			d.store.RemoveFromCart(id)
			d.printCart()
		}
	case "less":
		if id, ok := d.intArg(args, 0); ok {
			d.store.DecreaseQuantityInCart(id)
			d.printCart()
		}
	case "checkout":
		d.store.ShowCheckout()
		d.printf("enter: pay <id;full name;address;card;expiry;cvv[;save]>\n")
	case "load":
		d.loadCustomer(ctx, args)
	case "pay":
		d.pay(ctx, args)
	case "back":
		d.store.ShowCatalog()
	default:
		d.printf("unknown command %q, type 'help'\n", cmd)
	}
}

func (d *Driver) printHelp() {
	d.printf("commands:\n")
	d.printf("  list                 show the catalog\n")
	d.printf("  view <id>            show a product, fetch its images\n")
	d.printf("  add <id> [qty]       add to cart\n")
	d.printf("  cart                 show the cart\n")
	d.printf("  remove <id>          drop a cart line\n")
	d.printf("  less <id>            decrease a line by one\n")
	d.printf("  checkout             start checkout\n")
	d.printf("  load <customer id>   prefill from a saved customer\n")
	d.printf("  pay <id;name;address;card;expiry;cvv[;save]>\n")
	d.printf("  back | quit\n")
}

func (d *Driver) printCatalog() {
	if !d.store.DataReady() {
		d.printf("catalog is still loading...\n")
		return
	}
	for _, p := range d.store.Catalog() {
		d.printf("[%d] %s  $%.2f  (stock %d, rating %.1f)\n", p.ID, p.Title, p.Price, p.Stock, p.Rating)
	}
}

func (d *Driver) view(args []string) {
	id, ok := d.intArg(args, 0)
	if !ok {
		return
	}
	p, found := d.store.Product(id)
	if !found {
		d.printf("no product with id %d\n", id)
		return
	}
	d.store.ShowProduct(id)
	d.printf("%s\n%s\nCategory: %s\nPrice: $%.2f\nStock: %d\nReturn policy: %s\n",
		p.Title, p.Description, p.Category, p.Price, p.Stock, p.ReturnPolicy)
	for _, r := range p.Reviews {
		d.printf("  %d/5 %s — %s\n", r.Rating, r.Comment, r.ReviewerName)
	}
	d.printf("downloading %d image(s) in the background\n", len(p.Images))
}

func (d *Driver) add(args []string) {
	id, ok := d.intArg(args, 0)
	if !ok {
		return
	}
	qty := 1
	if len(args) > 1 {
		if q, err := strconv.Atoi(args[1]); err == nil {
			qty = q
		}
	}
	p, found := d.store.Product(id)
	if !found {
		d.printf("no product with id %d\n", id)
		return
	}
	if p.Stock == 0 {
		d.printf("%s is out of stock\n", p.Title)
		return
	}
	d.store.AddToCart(p, qty)
	d.printf("added %s\n", p.Title)
}

func (d *Driver) printCart() {
	lines := d.store.CartSnapshot()
	if len(lines) == 0 {
		d.printf("the cart is empty\n")
		return
	}
	for _, l := range lines {
		d.printf("[%d] %s x %d — $%.2f\n", l.Product.ID, l.Product.Title, l.Quantity, l.Product.Price*float64(l.Quantity))
	}
	d.printf("total: $%.2f\n", store.Total(lines))
}

func (d *Driver) loadCustomer(ctx context.Context, args []string) {
	if len(args) == 0 {
		d.printf("usage: load <customer id>\n")
		return
	}
	b, err := d.checkout.LoadCustomer(ctx, args[0])
	if err != nil {
		return // store error is printed by the command loop
	}
	d.printf("loaded %s, %s (card ending %s)\n", b.FullName, b.Address, tail(b.CreditCard, 4))
}

func (d *Driver) pay(ctx context.Context, args []string) {
	parts := strings.Split(strings.Join(args, " "), ";")
	if len(parts) < 6 {
		d.printf("usage: pay <id;full name;address;card;expiry;cvv[;save]>\n")
		return
	}
	buyer := domain.Buyer{
		ID:         strings.TrimSpace(parts[0]),
		FullName:   strings.TrimSpace(parts[1]),
		Address:    strings.TrimSpace(parts[2]),
		CreditCard: strings.TrimSpace(parts[3]),
		Expiry:     strings.TrimSpace(parts[4]),
		CVV:        strings.TrimSpace(parts[5]),
	}
	saveDetails := len(parts) > 6 && strings.TrimSpace(parts[6]) == "save"
	order, err := d.checkout.PlaceOrder(ctx, buyer, saveDetails)
	if err != nil {
		if errors.Is(err, checkoutapp.ErrEmptyCart) {
			d.printf("the cart is empty\n")
		}
		return
	}
	d.printf("thank you for shopping with us! order %s, total $%.2f\n", order.ID, order.Total)
}

func (d *Driver) intArg(args []string, i int) (int, bool) {
	if len(args) <= i {
		d.printf("missing product id\n")
		return 0, false
	}
	id, err := strconv.Atoi(args[i])
	if err != nil {
		d.printf("%q is not a product id\n", args[i])
		return 0, false
	}
	return id, true
}

func (d *Driver) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
