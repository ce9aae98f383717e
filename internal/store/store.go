// Package store holds the single shared state object of the storefront
// client: the product catalog, the shopping cart, the active screen mode and
// the fetch signaling used to coordinate the presentation driver with the
// background fetch worker. Every accessor takes the store's one mutex, so a
// reader always observes either the pre- or post-state of a mutation, never
// a partial one.
package store

import "sync"

// Mode selects which storefront screen the presentation driver is showing.
// The fetch worker branches on the same value to decide what to download.
type Mode int

const (
	ModeCatalog Mode = iota
	ModeProductDetail
	ModeCart
	ModeCheckout
	ModeThankYou
)

func (m Mode) String() string {
	switch m {
	case ModeCatalog:
		return "catalog"
	case ModeProductDetail:
		return "product-detail"
	case ModeCart:
		return "cart"
	case ModeCheckout:
		return "checkout"
	case ModeThankYou:
		return "thank-you"
	}
	return "unknown"
}

// NoSelection is the sentinel selected-product id outside product-detail mode.
const NoSelection = -1

// Store is shared between the presentation driver and the fetch worker for
// the lifetime of the process. Neither owns it exclusively.
type Store struct {
	mu   sync.Mutex
	cond *sync.Cond

	products []Product
	cart     []CartLine

	mode       Mode
	selectedID int

	dataReady      bool
	fetchRequested bool
	exiting        bool

	// product id -> asset keys already downloaded, append-only per id
	assets map[int][]string

	lastError string
	hasError  bool
}

func New() *Store {
	s := &Store{
		mode:       ModeCatalog,
		selectedID: NoSelection,
		assets:     make(map[int][]string),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// FetchTask is the snapshot the worker acts on for one fetch cycle. Product
// is a deep copy, valid only when HasProduct is set.
type FetchTask struct {
	Mode       Mode
	Product    Product
	HasProduct bool
}

// AwaitFetchRequest blocks until a fetch is requested or exit is signaled.
// It returns ok=false on exit. On ok=true the returned task carries the mode
// and selection that were visible when the request was made.
func (s *Store) AwaitFetchRequest() (FetchTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.fetchRequested && !s.exiting {
		s.cond.Wait()
	}
	if s.exiting {
		return FetchTask{}, false
	}
	task := FetchTask{Mode: s.mode}
	if s.mode == ModeProductDetail && s.selectedID != NoSelection {
		if i := s.indexOf(s.selectedID); i >= 0 {
			task.Product = cloneProduct(s.products[i])
			task.HasProduct = true
		}
	}
	return task, true
}

// FinishFetch clears the fetch-requested flag at the end of a worker cycle.
func (s *Store) FinishFetch() {
	s.mu.Lock()
	s.fetchRequested = false
	s.mu.Unlock()
}

// FetchPending reports whether a fetch request has not yet been completed.
func (s *Store) FetchPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchRequested
}

// RequestExit signals the worker to terminate. The flag is never cleared.
func (s *Store) RequestExit() {
	s.mu.Lock()
	s.exiting = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

func (s *Store) Exiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exiting
}

// ShowCatalog switches to the catalog screen and requests a catalog fetch.
// The mode write and the worker wake-up happen in one critical section, so
// the worker is guaranteed to observe the new mode.
func (s *Store) ShowCatalog() {
	s.transition(ModeCatalog, NoSelection, true)
}

// ShowProduct switches to the detail screen for the given product id and
// requests an asset fetch for it.
func (s *Store) ShowProduct(id int) {
	s.transition(ModeProductDetail, id, true)
}

// ShowCart switches to the cart screen. No fetch is needed there.
func (s *Store) ShowCart() {
	s.transition(ModeCart, NoSelection, false)
}

// ShowCheckout switches to the checkout screen.
func (s *Store) ShowCheckout() {
	s.transition(ModeCheckout, NoSelection, false)
}

// ShowThankYou switches to the post-purchase screen.
func (s *Store) ShowThankYou() {
	s.transition(ModeThankYou, NoSelection, false)
}

func (s *Store) transition(m Mode, selected int, fetch bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
	s.selectedID = selected
	if fetch {
		s.fetchRequested = true
		s.cond.Signal()
	}
}

func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SelectedID returns the selected product id, or NoSelection.
func (s *Store) SelectedID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// SetCatalog replaces the catalog wholesale. A non-empty catalog latches the
// data-ready flag; it is never reset afterwards.
func (s *Store) SetCatalog(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	if len(products) > 0 {
		s.dataReady = true
	}
}

func (s *Store) DataReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataReady
}

// Catalog returns a deep copy of the product list.
func (s *Store) Catalog() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	for i, p := range s.products {
		out[i] = cloneProduct(p)
	}
	return out
}

// Product looks a product up by id. Lookup is always by explicit id search,
// never by position: positions shift when the catalog is refetched.
func (s *Store) Product(id int) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return cloneProduct(s.products[i]), true
	}
	return Product{}, false
}

func (s *Store) indexOf(id int) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// HasAsset reports whether the given asset key was already downloaded for
// the product. The worker uses this to skip re-fetching on repeated views.
func (s *Store) HasAsset(productID int, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.assets[productID] {
		if k == key {
			return true
		}
	}
	return false
}

// AddAsset records a downloaded asset key for the product.
func (s *Store) AddAsset(productID int, key string) {
	s.mu.Lock()
	s.assets[productID] = append(s.assets[productID], key)
	s.mu.Unlock()
}

// Assets returns a copy of the downloaded asset keys for the product.
func (s *Store) Assets(productID int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.assets[productID]...)
}

// SetLastError records a user-visible failure message. It stays set until
// the presentation driver consumes it once.
func (s *Store) SetLastError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.hasError = true
	s.mu.Unlock()
}

// ConsumeLastError returns the pending error message, if any, and clears it.
func (s *Store) ConsumeLastError() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasError {
		return "", false
	}
	msg := s.lastError
	s.lastError = ""
	s.hasError = false
	return msg, true
}
