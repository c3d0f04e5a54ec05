package allocation

import (
	"strings"

	"funilaria_ops/internal/domain/entities"
)

// Index resolves a part line's weak inventory reference: id match first, then
// code match. Code matching is lossy when two items share a code; the first
// item in collection order wins and later duplicates are ignored.
type Index struct {
	byID   map[string]entities.InventoryItem
	byCode map[string]entities.InventoryItem
}

// NewIndex builds the lookup maps from the inventory collection.
func NewIndex(items []entities.InventoryItem) *Index {
	ix := &Index{
		byID:   make(map[string]entities.InventoryItem, len(items)),
		byCode: make(map[string]entities.InventoryItem, len(items)),
	}
	for _, it := range items {
		if it.ID != "" {
			ix.byID[it.ID] = it
		}
		code := normalizeCode(it.Code)
		if code == "" {
			continue
		}
		if _, exists := ix.byCode[code]; !exists {
			ix.byCode[code] = it
		}
	}
	return ix
}

// Resolve returns the inventory item a part line refers to, or false when the
// line is unlinked ("lost link"). An unresolvable line is always classified
// WAITING by the allocator; it is never an error.
func (ix *Index) Resolve(line entities.PartLine) (entities.InventoryItem, bool) {
	if line.InventoryID != "" {
		if it, ok := ix.byID[line.InventoryID]; ok {
			return it, true
		}
	}
	if code := normalizeCode(line.Code); code != "" {
		if it, ok := ix.byCode[code]; ok {
			return it, true
		}
	}
	return entities.InventoryItem{}, false
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
