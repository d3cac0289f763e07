package stash

import (
	"github.com/TheBitDrifter/mask"
)

var _ FilterNode = &Filter{}

// Filter matches entities by the component types they hold.
type Filter struct {
	allOf  []Component
	anyOf  []Component
	noneOf []Component
}

func newFilter() *Filter {
	return &Filter{}
}

// With requires every listed component.
func (f *Filter) With(comps ...Component) *Filter {
	f.allOf = append(f.allOf, comps...)
	return f
}

// WithAny requires at least one of the listed components.
func (f *Filter) WithAny(comps ...Component) *Filter {
	f.anyOf = append(f.anyOf, comps...)
	return f
}

// Without excludes entities holding any of the listed components.
func (f *Filter) Without(comps ...Component) *Filter {
	f.noneOf = append(f.noneOf, comps...)
	return f
}

// Evaluate builds the masks against sto's schema at evaluation time, so a
// filter can be shared between stores.
func (f *Filter) Evaluate(sto *Store, id EntityID) bool {
	slot := sto.entities.slot(id)
	if slot == nil {
		return false
	}

	if len(f.allOf) > 0 {
		var allMask mask.Mask
		for _, comp := range f.allOf {
			col, ok := sto.columns[comp.reflectType()]
			if !ok {
				return false
			}
			allMask.Mark(col.row)
		}
		if !slot.mask.ContainsAll(allMask) {
			return false
		}
	}

	if len(f.anyOf) > 0 {
		var anyMask mask.Mask
		known := false
		for _, comp := range f.anyOf {
			if col, ok := sto.columns[comp.reflectType()]; ok {
				anyMask.Mark(col.row)
				known = true
			}
		}
		if !known || !slot.mask.ContainsAny(anyMask) {
			return false
		}
	}

	if len(f.noneOf) > 0 {
		var noneMask mask.Mask
		known := false
		for _, comp := range f.noneOf {
			if col, ok := sto.columns[comp.reflectType()]; ok {
				noneMask.Mark(col.row)
				known = true
			}
		}
		if known && !slot.mask.ContainsNone(noneMask) {
			return false
		}
	}
	return true
}
