package status

import "sort"

// Catalog is the read-only lookup table of status definitions.
//
// An unknown id is a recoverable miss, never an error: upstream
// entries may reference a definition that has not loaded yet, and
// such entries degrade to "unclassified" (no bound, not a login or
// logout kind).
type Catalog struct {
	defs map[string]StatusDefinition
}

func NewCatalog(defs []StatusDefinition) Catalog {
	m := make(map[string]StatusDefinition, len(defs))
	for _, d := range defs {
		m[d.ID] = d
	}
	return Catalog{defs: m}
}

// Lookup returns the definition for id. ok is false on a miss and the
// zero definition is returned, which behaves as unclassified.
func (c Catalog) Lookup(id string) (StatusDefinition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// All returns every definition ordered by display name, id as tie-break.
func (c Catalog) All() []StatusDefinition {
	out := make([]StatusDefinition, 0, len(c.defs))
	for _, d := range c.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (c Catalog) Len() int {
	return len(c.defs)
}
