package argmatch

import (
	"errors"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/internal/counter"
	"github.com/napalu/argmatch/internal/store"
	"github.com/napalu/argmatch/internal/util"
	"github.com/napalu/argmatch/parse"
	"github.com/napalu/argmatch/types"
)

// snapshot is the immutable view of a Parser's definitions and settings used by a single parse
type snapshot struct {
	arguments                []*Argument
	options                  []*Option
	definitions              map[types.ArgumentID]Definition
	owners                   map[types.ValueID]Definition
	resolver                 *parse.Resolver
	names                    *store.NameTable
	ignoreUndefinedArguments bool
	ignoreUndefinedOptions   bool
	argumentCallback         Callback
	optionCallback           Callback
}

func newSnapshot(p *Parser) (*snapshot, error) {
	s := &snapshot{
		arguments:                append([]*Argument(nil), p.arguments...),
		options:                  append([]*Option(nil), p.options...),
		definitions:              map[types.ArgumentID]Definition{},
		owners:                   map[types.ValueID]Definition{},
		ignoreUndefinedArguments: p.ignoreUndefinedArguments,
		ignoreUndefinedOptions:   p.ignoreUndefinedOptions,
		argumentCallback:         p.argumentCallback,
		optionCallback:           p.optionCallback,
	}

	var (
		flags []parse.Flag
		names []store.Name
		seen  = map[string]bool{}
	)
	for i, o := range s.options {
		for _, f := range o.flags {
			key := util.Fold(f, p.caseInsensitive)
			if seen[key] {
				return nil, errs.ErrDuplicateFlag.WithArgs(f)
			}
			seen[key] = true
			flags = append(flags, parse.Flag{Name: f, Index: i, TakesValue: o.TakesValue()})
			names = append(names, store.Name{Name: f, ValueID: o.valueID})
		}
		names = append(names, store.Name{Name: o.valueName, ValueID: o.valueID})
		s.register(o)
	}
	for _, a := range s.arguments {
		names = append(names,
			store.Name{Name: a.name, ValueID: a.valueID},
			store.Name{Name: a.valueName, ValueID: a.valueID})
		s.register(a)
	}

	table, err := store.NewNameTable(names, p.caseInsensitive)
	if err != nil {
		return nil, err
	}
	s.names = table
	s.resolver = parse.NewResolver(flags, p.style, p.caseInsensitive, p.abbreviations)

	return s, nil
}

func (s *snapshot) register(d Definition) {
	s.definitions[d.ArgumentID()] = d
	if _, found := s.owners[d.ValueID()]; !found {
		s.owners[d.ValueID()] = d
	}
}

func (s *snapshot) bounds() []counter.Bounds {
	bounds := make([]counter.Bounds, len(s.arguments))
	for i, a := range s.arguments {
		bounds[i] = counter.Bounds{Min: a.min, Max: a.max}
	}

	return bounds
}

func (s *snapshot) newEngine(args []string, dryRun bool) *engine {
	st := store.New()
	return &engine{
		snapshot:     s,
		state:        parse.NewState(args),
		store:        st,
		builder:      &ResultBuilder{view: view{store: st, snapshot: s}},
		flagsEnabled: true,
		dryRun:       dryRun,
	}
}

// countPositionals parses args without side effects and returns the number of positional tokens
func (s *snapshot) countPositionals(args []string) int {
	e := s.newEngine(args, true)
	for {
		if _, _, ok := e.next(); !ok {
			break
		}
	}

	return e.positionals
}

// engine matches the tokens of one command line against a snapshot
type engine struct {
	*snapshot
	state   parse.State
	counter *counter.Counter
	store   *store.Store
	builder *ResultBuilder
	// flagsEnabled is false once a LastOption option has been matched
	flagsEnabled bool
	// dryRun engines only count positional tokens
	dryRun      bool
	positionals int
	done        bool
	code        types.ResultCode
	special     *Option
	unprocessed []string
	err         error
}

func newEngine(p *Parser, args []string) (*engine, error) {
	s, err := newSnapshot(p)
	if err != nil {
		return nil, err
	}

	e := s.newEngine(args, false)
	bounds := s.bounds()
	if counter.NeedsCount(bounds) {
		e.counter = counter.NewWithCount(bounds, s.countPositionals(args))
	} else {
		e.counter = counter.New(bounds)
	}

	return e, nil
}

// next processes tokens until a definition is matched or the parse ends
func (e *engine) next() (Definition, string, bool) {
	for !e.done {
		token, ok := e.state.Next()
		if !ok {
			e.finish()
			break
		}
		if d, value, matched := e.process(token); matched {
			return d, value, true
		}
	}

	return nil, "", false
}

func (e *engine) process(token string) (Definition, string, bool) {
	if !e.flagsEnabled {
		if f, found := e.resolver.Exact(token); found && e.options[f.Index].typeOf == types.LastArgument {
			o := e.options[f.Index]
			return e.option(o, o.Constant())
		}
		return e.positional(token)
	}

	m, isFlag, err := e.resolver.Resolve(token)
	switch {
	case !isFlag:
		return e.positional(token)
	case err != nil:
		if e.ignoreUndefinedOptions && errors.Is(err, errs.ErrUnknownOption) {
			e.unprocessed = append(e.unprocessed, token)
		} else {
			e.fail(err)
		}
		return nil, "", false
	}

	if m.FollowUp != "" {
		e.state.PushFront(m.FollowUp)
	}
	o := e.options[m.Index]
	value, err := e.optionValue(o, m)
	if err != nil {
		e.fail(err)
		return nil, "", false
	}

	return e.option(o, value)
}

func (e *engine) optionValue(o *Option, m parse.Match) (string, error) {
	if !o.TakesValue() {
		if m.HasValue {
			return "", errs.ErrValueNotAllowed.WithArgs(m.Name)
		}
		return o.Constant(), nil
	}

	if m.HasValue {
		return m.Value, nil
	}
	if !m.EmbeddedOnly() {
		if value, ok := e.state.Next(); ok {
			return value, nil
		}
	}

	return "", errs.ErrMissingValue.WithArgs(m.Name)
}

func (e *engine) option(o *Option, value string) (Definition, string, bool) {
	switch o.operation {
	case types.OpAssign:
		e.store.Assign(o.valueID, o.argumentID, value)
	case types.OpAppend:
		e.store.Append(o.valueID, o.argumentID, value)
	case types.OpClear:
		e.store.Clear(o.valueID)
	case types.OpNone:
		e.store.Touch(o.valueID, o.argumentID)
	}
	if !e.runCallbacks(o, value, o.callback, e.optionCallback) {
		return nil, "", false
	}

	switch o.typeOf {
	case types.Help, types.Stop:
		e.special = o
		e.code = types.ResultStop
		e.unprocessed = append(e.unprocessed, e.state.Drain()...)
		e.done = true
	case types.LastArgument:
		e.unprocessed = append(e.unprocessed, e.state.Drain()...)
	case types.LastOption:
		e.flagsEnabled = false
	}

	return o, value, true
}

func (e *engine) positional(token string) (Definition, string, bool) {
	if e.dryRun {
		e.positionals++
		return nil, "", false
	}

	i := e.counter.Next()
	if i < 0 {
		if e.ignoreUndefinedArguments {
			e.unprocessed = append(e.unprocessed, token)
		} else {
			e.fail(errs.ErrTooManyArguments.WithArgs(token))
		}
		return nil, "", false
	}

	a := e.arguments[i]
	e.store.Append(a.valueID, a.argumentID, token)
	if !e.runCallbacks(a, token, a.callback, e.argumentCallback) {
		return nil, "", false
	}

	return a, token, true
}

func (e *engine) runCallbacks(d Definition, value string, callbacks ...Callback) bool {
	if e.dryRun {
		return true
	}
	for _, callback := range callbacks {
		if callback == nil {
			continue
		}
		if err := callback(d, value, e.builder); err != nil {
			e.fail(errs.ErrCallback.WithArgs(d.DisplayName()).Wrap(err))
			return false
		}
	}

	return true
}

// finish runs the end of input checks
func (e *engine) finish() {
	e.done = true
	if e.dryRun {
		return
	}

	if i := e.counter.FirstIncomplete(); i >= 0 {
		e.fail(errs.ErrMissingArgument.WithArgs(e.arguments[i].DisplayName()))
		return
	}
	for _, o := range e.options {
		if o.mandatory && !e.store.Has(o.valueID) {
			e.fail(errs.ErrMissingOption.WithArgs(o.DisplayName()))
			return
		}
	}
}

func (e *engine) fail(err error) {
	e.err = err
	e.code = types.ResultError
	e.done = true
}

func (e *engine) result() *Result {
	return &Result{
		view:        e.builder.view,
		code:        e.code,
		special:     e.special,
		unprocessed: append([]string(nil), e.unprocessed...),
		err:         e.err,
	}
}
