package rangestore

import "headsup-analyzer/pkg/combo"

// Contains returns true if the combo is part of the pattern's range
func (p *Pattern) Contains(c combo.Combo) bool {
	return p.Combos.Contains(c)
}

// AllContained returns true only if every combo is part of the range
func (p *Pattern) AllContained(combos []combo.Combo) bool {
	for _, c := range combos {
		if !p.Contains(c) {
			return false
		}
	}

	return true
}
