package allocation

import "funilaria_ops/internal/domain/entities"

// Snapshot is a per-pass scratch copy of on-hand quantities keyed by inventory
// id. It is decremented by virtual reservations during a single allocation
// pass and is never written back to master stock. Two boards rendered at the
// same time each build their own snapshot.
type Snapshot map[string]float64

// NewSnapshot copies the authoritative on-hand quantities of the given items.
func NewSnapshot(items []entities.InventoryItem) Snapshot {
	s := make(Snapshot, len(items))
	for _, it := range items {
		s[it.ID] = it.OnHand
	}
	return s
}

// Available returns the remaining quantity for the id within this pass.
func (s Snapshot) Available(id string) float64 {
	return s[id]
}

// Reserve decrements the remaining quantity for id by qty if enough is left.
// The check runs against the already-decremented value, so earlier reservations
// in the same pass reduce what later ones can take.
func (s Snapshot) Reserve(id string, qty float64) bool {
	if _, ok := s[id]; !ok {
		return false
	}
	if s[id] < qty {
		return false
	}
	s[id] -= qty
	return true
}
