package store

import (
	"sort"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/internal/util"
	"github.com/napalu/argmatch/types"
)

// Name associates a flag, argument name or value name with a value id
type Name struct {
	Name    string
	ValueID types.ValueID
}

// NameTable is a sorted lookup table from names to value ids
type NameTable struct {
	names []Name
	fold  bool
}

// NewNameTable builds a NameTable, folding names when fold is true. A name may be listed
// more than once as long as it always refers to the same value id.
func NewNameTable(names []Name, fold bool) (*NameTable, error) {
	sorted := make([]Name, 0, len(names))
	for _, n := range names {
		if n.Name == "" {
			continue
		}
		sorted = append(sorted, Name{Name: util.Fold(n.Name, fold), ValueID: n.ValueID})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	unique := sorted[:0]
	for _, n := range sorted {
		if len(unique) > 0 && unique[len(unique)-1].Name == n.Name {
			if unique[len(unique)-1].ValueID != n.ValueID {
				return nil, errs.ErrNameConflict.WithArgs(n.Name)
			}
			continue
		}
		unique = append(unique, n)
	}

	return &NameTable{names: unique, fold: fold}, nil
}

// Lookup returns the value id of name
func (t *NameTable) Lookup(name string) (types.ValueID, bool) {
	name = util.Fold(name, t.fold)
	i := sort.Search(len(t.names), func(i int) bool {
		return t.names[i].Name >= name
	})
	if i < len(t.names) && t.names[i].Name == name {
		return t.names[i].ValueID, true
	}

	return 0, false
}

// Len returns the number of distinct names
func (t *NameTable) Len() int {
	return len(t.names)
}
