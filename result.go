package argmatch

import (
	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/internal/store"
	"github.com/napalu/argmatch/types"
)

// view gives read access to the values recorded during a parse
type view struct {
	store    *store.Store
	snapshot *snapshot
}

// Has reports whether a value was recorded under name. Name is a flag, an argument name or a value name.
func (v *view) Has(name string) bool {
	id, err := v.lookup(name)
	return err == nil && v.store.Has(id)
}

// Value returns the single value recorded under name. It fails with errs.ErrAmbiguousRead if
// several values were recorded and with errs.ErrUnknownName if no definition uses name.
func (v *view) Value(name string) (Value, error) {
	id, err := v.lookup(name)
	if err != nil {
		return Value{}, err
	}

	return v.value(id, name)
}

// Values returns all values recorded under name in the order they were recorded
func (v *view) Values(name string) (Values, error) {
	id, err := v.lookup(name)
	if err != nil {
		return Values{}, err
	}

	return v.values(id), nil
}

func (v *view) lookup(name string) (types.ValueID, error) {
	id, found := v.snapshot.names.Lookup(name)
	if !found {
		return 0, errs.ErrUnknownName.WithArgs(name)
	}

	return id, nil
}

func (v *view) value(id types.ValueID, label string) (Value, error) {
	entry, found, err := v.store.Get(id)
	if err != nil {
		return Value{}, errs.ErrAmbiguousRead.WithArgs(label)
	}
	if !found {
		present := v.store.Has(id)
		return Value{found: present, presenceOnly: present, def: v.snapshot.owners[id]}, nil
	}

	return Value{value: entry.Value, found: true, def: v.owner(entry)}, nil
}

func (v *view) values(id types.ValueID) Values {
	entries := v.store.GetAll(id)
	values := Values{
		values: make([]string, len(entries)),
		defs:   make([]Definition, len(entries)),
		def:    v.snapshot.owners[id],
	}
	for i, e := range entries {
		values.values[i] = e.Value
		values.defs[i] = v.owner(e)
	}

	return values
}

func (v *view) owner(e store.Entry) Definition {
	if d, found := v.snapshot.definitions[e.ArgumentID]; found {
		return d
	}

	return nil
}

// check fails unless d belongs to the parser which produced this view
func (v *view) check(d Definition) error {
	if d == nil {
		return errs.ErrNilDefinition
	}
	if known, found := v.snapshot.definitions[d.ArgumentID()]; !found || known != d {
		return errs.ErrUnknownName.WithArgs(d.DisplayName())
	}

	return nil
}

// Result is the outcome of a parse. It owns the recorded values.
type Result struct {
	view
	code        types.ResultCode
	special     *Option
	unprocessed []string
	err         error
}

// Code returns types.ResultNormal after a complete parse, types.ResultStop after a help or stop
// option and types.ResultError after a parse error
func (r *Result) Code() types.ResultCode {
	return r.code
}

// Err returns the parse error, nil unless Code returns types.ResultError
func (r *Result) Err() error {
	return r.err
}

// SpecialOption returns the help or stop option which ended the parse
func (r *Result) SpecialOption() (*Option, error) {
	if r.special == nil {
		return nil, errs.ErrNoSpecialOption
	}

	return r.special, nil
}

// Unprocessed returns the tokens which were passed through without being matched: the tokens after
// a help, stop or last-argument option, and undefined arguments and options if they are ignored
func (r *Result) Unprocessed() []string {
	return append([]string(nil), r.unprocessed...)
}

// Arguments returns the argument definitions of the parse
func (r *Result) Arguments() []*Argument {
	return append([]*Argument(nil), r.snapshot.arguments...)
}

// Options returns the option definitions of the parse
func (r *Result) Options() []*Option {
	return append([]*Option(nil), r.snapshot.options...)
}

// HasDef reports whether a value was recorded for the definition's value id
func (r *Result) HasDef(d Definition) bool {
	return r.check(d) == nil && r.store.Has(d.ValueID())
}

// ValueOf returns the single value recorded for the definition's value id
func (r *Result) ValueOf(d Definition) (Value, error) {
	if err := r.check(d); err != nil {
		return Value{}, err
	}

	return r.value(d.ValueID(), d.DisplayName())
}

// ValuesOf returns all values recorded for the definition's value id
func (r *Result) ValuesOf(d Definition) (Values, error) {
	if err := r.check(d); err != nil {
		return Values{}, err
	}

	return r.values(d.ValueID()), nil
}

// ResultBuilder gives callbacks read and write access to the values of a parse in progress
type ResultBuilder struct {
	view
}

// Assign replaces the values recorded under name with value
func (b *ResultBuilder) Assign(name, value string) error {
	id, err := b.lookup(name)
	if err != nil {
		return err
	}
	b.store.Assign(id, b.ownerID(id), value)

	return nil
}

// Append adds value to the values recorded under name
func (b *ResultBuilder) Append(name, value string) error {
	id, err := b.lookup(name)
	if err != nil {
		return err
	}
	b.store.Append(id, b.ownerID(id), value)

	return nil
}

// Clear removes the values recorded under name
func (b *ResultBuilder) Clear(name string) error {
	id, err := b.lookup(name)
	if err != nil {
		return err
	}
	b.store.Clear(id)

	return nil
}

func (b *ResultBuilder) ownerID(id types.ValueID) types.ArgumentID {
	if d, found := b.snapshot.owners[id]; found {
		return d.ArgumentID()
	}

	return 0
}
