package domain

import "time"

// Wishlist holds a shopper's saved-for-later products. Each entry is a
// Product snapshot with no quantity; at most one entry exists per product id.
// Entry order is insertion order, kept for display stability.
type Wishlist struct {
	UserID    string    `json:"user_id"`
	Entries   []Product `json:"entries"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contains reports whether an entry with the given product id exists.
func (w *Wishlist) Contains(productID string) bool {
	return w.find(productID) >= 0
}

// Count returns the number of entries.
func (w *Wishlist) Count() int {
	return len(w.Entries)
}

// Add inserts the product snapshot if no entry with its id exists. A second
// add with the same id is a no-op; the original snapshot is kept. Returns
// true if the wishlist changed.
func (w *Wishlist) Add(p Product) bool {
	if w.Contains(p.ID) {
		return false
	}
	w.Entries = append(w.Entries, p)
	return true
}

// Remove deletes the entry for the given product id if present. Returns true
// if the wishlist changed.
func (w *Wishlist) Remove(productID string) bool {
	i := w.find(productID)
	if i < 0 {
		return false
	}
	w.Entries = append(w.Entries[:i], w.Entries[i+1:]...)
	return true
}

// Clear empties the wishlist.
func (w *Wishlist) Clear() {
	w.Entries = []Product{}
}

func (w *Wishlist) find(productID string) int {
	for i := range w.Entries {
		if w.Entries[i].ID == productID {
			return i
		}
	}
	return -1
}
