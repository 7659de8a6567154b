// internal/defs/loot_tables.go
package defs

import "brainrot-td/internal/component"

// LootEntry — одна запись таблицы покупки: стихия и её относительный вес.
type LootEntry struct {
	Element component.Element
	Weight  int
}

// LootTable returns one entry per element in ascending element order.
// Elements without an explicit weight get weight 1, so an empty weights map
// is a uniform draw.
func (t *Tuning) LootTable() []LootEntry {
	entries := make([]LootEntry, 0, len(component.Elements))
	for _, e := range component.Elements {
		w, ok := t.Weights[e]
		if !ok {
			w = 1
		}
		if w <= 0 {
			continue
		}
		entries = append(entries, LootEntry{Element: e, Weight: w})
	}
	return entries
}
