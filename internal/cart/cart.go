package cart

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jafarshop/storefront/internal/domain"
)

// Listener is notified after every cart mutation. Notification happens
// synchronously while the mutation lock is released, so listeners may call
// back into the store.
type Listener func(items []domain.CartItem)

// Store holds one session's cart items. All mutations go through its
// methods; AddItem's find-or-append runs under the lock so the
// one-entry-per-(product, size) invariant holds under concurrent use.
type Store struct {
	mu        sync.Mutex
	items     []domain.CartItem
	listeners []Listener
}

func NewStore() *Store {
	return &Store{}
}

// AddItem adds one unit of a product/size to the cart. A repeat add of the
// same (productID, size) pair increments the existing entry's quantity;
// its stored name, price and image are left as first written. An absent
// size is a distinct key from any concrete size.
func (s *Store) AddItem(productID, name, price, image, size, variantID string) domain.CartItem {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].Size == size {
			s.items[i].Quantity++
			item := s.items[i]
			s.unlockAndNotify()
			return item
		}
	}

	item := domain.CartItem{
		ID:        newItemID(productID, size),
		ProductID: productID,
		VariantID: variantID,
		Name:      name,
		Price:     price,
		Image:     image,
		Size:      size,
		Quantity:  1,
	}
	s.items = append(s.items, item)
	s.unlockAndNotify()
	return item
}

// RemoveItem deletes the entry with the given id. Unknown ids are a no-op.
func (s *Store) RemoveItem(itemID string) {
	s.mu.Lock()
	s.removeLocked(itemID)
	s.unlockAndNotify()
}

// UpdateQuantity sets an item's quantity. A quantity of zero or less
// removes the item entirely.
func (s *Store) UpdateQuantity(itemID string, quantity int) {
	s.mu.Lock()
	if quantity <= 0 {
		s.removeLocked(itemID)
		s.unlockAndNotify()
		return
	}
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.unlockAndNotify()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.unlockAndNotify()
}

// Items returns a copy of the cart contents.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Total sums price * quantity across the cart. Prices are expected to be
// plain decimal strings by the time they reach the cart, but currency
// markers are stripped defensively since locally-authored products carry
// prices like "90 USD".
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, item := range s.items {
		total += parsePrice(item.Price) * float64(item.Quantity)
	}
	return total
}

// ItemCount sums quantities across the cart.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subscribe registers a listener fired after every mutation.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Store) removeLocked(itemID string) {
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// unlockAndNotify snapshots state, releases the lock and fires listeners.
// Callers must hold the lock.
func (s *Store) unlockAndNotify() {
	items := s.snapshotLocked()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, l := range listeners {
		l(items)
	}
}

func (s *Store) snapshotLocked() []domain.CartItem {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// newItemID keeps the readable productID-size prefix and ends with a uuid
// instead of a wall-clock stamp, so two adds in the same clock tick cannot
// collide.
func newItemID(productID, size string) string {
	if size == "" {
		size = "default"
	}
	return fmt.Sprintf("%s-%s-%s", productID, size, uuid.NewString())
}

// parsePrice strips a trailing " USD" marker and a leading "$" before
// parsing. Anything still unparseable counts as zero.
func parsePrice(price string) float64 {
	price = strings.TrimSpace(price)
	price = strings.TrimSuffix(price, " USD")
	price = strings.TrimPrefix(price, "$")
	f, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return 0
	}
	return f
}
