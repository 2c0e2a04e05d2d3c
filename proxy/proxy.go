package proxy

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-presenter-cache/cache"
)

// Callback is an invocation-time argument representing code that runs per
// call. Its presence alone disqualifies a call from memoization; no attempt
// is made to infer whether the callback is actually read-only.
type Callback func(args ...any) any

// Handler is an operation defined on the proxy surface itself. Handlers
// shadow delegate methods of the same name and are memoized under exactly
// the same policy as delegated calls.
type Handler func(args []any, callback Callback) (any, error)

// executor is the resolved logic for one operation, whichever surface it
// lives on.
type executor func(args []any, callback Callback) (any, error)

// Proxy wraps a delegate object and memoizes the results of cacheable
// operations. It holds a shared reference to the delegate for its own
// lifetime and never mutates it; the memo store is created empty at
// construction and dies with the proxy.
type Proxy struct {
	id       string
	delegate any
	store    cache.Store
	keys     cache.KeyBuilder
	observer Observer
	handlers map[string]Handler
	methods  map[string]reflect.Value
}

// Option configures a Proxy at construction.
type Option func(*Proxy)

// WithStore replaces the default in-memory memo store.
func WithStore(store cache.Store) Option {
	return func(p *Proxy) {
		p.store = store
	}
}

// WithKeyBuilder replaces the default key builder.
func WithKeyBuilder(keys cache.KeyBuilder) Option {
	return func(p *Proxy) {
		p.keys = keys
	}
}

// WithObserver attaches an observer for dispatch events.
func WithObserver(observer Observer) Option {
	return func(p *Proxy) {
		p.observer = observer
	}
}

// WithHandler registers an explicit operation at construction time.
func WithHandler(name string, handler Handler) Option {
	return func(p *Proxy) {
		p.Define(name, handler)
	}
}

// New builds a caching proxy around delegate. The delegate's method set is
// reflected exactly once here; dispatch afterwards is a table lookup, never
// per-call reflection over the type.
func New(delegate any, opts ...Option) *Proxy {
	p := &Proxy{
		id:       uuid.NewString(),
		delegate: delegate,
		handlers: make(map[string]Handler),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.store == nil {
		p.store = cache.NewStore()
	}
	if p.keys == nil {
		p.keys = cache.NewDefaultKeyBuilder()
	}

	p.methods = methodTable(delegate)

	return p
}

// ID returns the proxy's instance identity, as carried in observer events.
func (p *Proxy) ID() string {
	return p.id
}

// Delegate returns the wrapped object.
func (p *Proxy) Delegate() any {
	return p.delegate
}

// Define registers name as an explicit operation on the proxy surface.
// Definitions take priority over delegate methods of the same name and are
// cached under the same policy.
func (p *Proxy) Define(name string, handler Handler) *Proxy {
	if handler != nil {
		p.handlers[normalizeOperation(name)] = handler
	}
	return p
}

// Invoke runs the named operation with the given arguments. This is the
// sole read entry point: cacheable calls are memoized, assignment
// operations pass through.
func (p *Proxy) Invoke(name string, args ...any) (any, error) {
	return p.dispatch(name, args, nil)
}

// InvokeWith runs the named operation with a callback argument attached.
// Calls carrying a callback always re-execute and never touch the memo
// store, in either direction.
func (p *Proxy) InvokeWith(name string, callback Callback, args ...any) (any, error) {
	return p.dispatch(name, args, callback)
}

func (p *Proxy) dispatch(name string, args []any, callback Callback) (any, error) {
	op := normalizeOperation(name)

	exec, ok := p.resolve(op)
	if !ok {
		p.emit(EventNotFound, op)
		return nil, &NoSuchOperationError{Operation: op}
	}

	switch Classify(op, callback != nil) {
	case BypassMutator:
		p.emit(EventBypassMutator, op)
		return exec(args, callback)
	case BypassCallback:
		p.emit(EventBypassCallback, op)
		return exec(args, callback)
	}

	key := p.keys.BuildKey(op, args...)
	if result, hit := p.store.Lookup(key); hit {
		p.emit(EventHit, op)
		return result, nil
	}
	p.emit(EventMiss, op)

	result, err := exec(args, callback)
	if err != nil {
		// Failures are never memoized; the next identical call re-executes.
		return nil, err
	}

	p.store.Store(key, result)
	p.emit(EventStore, op)
	return result, nil
}

// resolve picks the executor for op: proxy-surface definitions first,
// delegate methods second.
func (p *Proxy) resolve(op string) (executor, bool) {
	if handler, ok := p.handlers[op]; ok {
		return executor(handler), true
	}
	if method, ok := p.methods[op]; ok {
		return func(args []any, callback Callback) (any, error) {
			return p.call(op, method, args, callback)
		}, true
	}
	return nil, false
}

func (p *Proxy) emit(event Event, op string) {
	if p.observer == nil {
		return
	}
	p.observer.On(EventData{Event: event, ProxyID: p.id, Operation: op})
}

// methodTable indexes the delegate's exported methods by normalized
// operation name. Set<Name> methods are additionally published as the
// assignment operation "<name>=", which keeps the trailing-marker
// convention intact for Go delegates.
func methodTable(delegate any) map[string]reflect.Value {
	table := make(map[string]reflect.Value)
	if delegate == nil {
		return table
	}

	rv := reflect.ValueOf(delegate)
	rt := rv.Type()

	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)
		if !method.IsExported() {
			continue
		}

		bound := rv.Method(i)
		table[toSnake(method.Name)] = bound

		if rest, ok := strings.CutPrefix(method.Name, "Set"); ok && rest != "" {
			table[toSnake(rest)+AssignmentMarker] = bound
		}
	}

	return table
}

// call applies args (and the callback, when the method can receive one) to
// a bound delegate method and maps its results onto the (result, error)
// invocation contract.
func (p *Proxy) call(op string, method reflect.Value, args []any, callback Callback) (any, error) {
	mt := method.Type()

	in := args
	if callback != nil && acceptsCallback(mt) {
		in = make([]any, 0, len(args)+1)
		in = append(in, args...)
		in = append(in, callback)
	}

	values, err := conform(op, mt, in)
	if err != nil {
		return nil, err
	}

	return results(op, method.Call(values))
}

// acceptsCallback reports whether the method's final parameter can receive
// the callback argument. Methods that ignore their callback still execute;
// the call bypasses the memo store either way.
func acceptsCallback(mt reflect.Type) bool {
	n := mt.NumIn()
	if n == 0 {
		return false
	}
	last := mt.In(n - 1)
	if mt.IsVariadic() {
		last = last.Elem()
	}
	return reflect.TypeOf(Callback(nil)).AssignableTo(last)
}

// conform shapes the raw argument list into reflect values matching the
// method signature, honoring variadic tails.
func conform(op string, mt reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := mt.NumIn()
	if mt.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, &BadArgumentsError{
				Operation: op,
				Reason:    fmt.Sprintf("want at least %d arguments, got %d", numIn-1, len(args)),
			}
		}
	} else if len(args) != numIn {
		return nil, &BadArgumentsError{
			Operation: op,
			Reason:    fmt.Sprintf("want %d arguments, got %d", numIn, len(args)),
		}
	}

	values := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := mt.In(min(i, numIn-1))
		if mt.IsVariadic() && i >= numIn-1 {
			want = mt.In(numIn - 1).Elem()
		}

		value, err := conformValue(op, arg, want, i)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}

	return values, nil
}

func conformValue(op string, arg any, want reflect.Type, pos int) (reflect.Value, error) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, &BadArgumentsError{
			Operation: op,
			Reason:    fmt.Sprintf("argument %d: nil is not assignable to %s", pos, want),
		}
	}

	rv := reflect.ValueOf(arg)
	switch {
	case rv.Type().AssignableTo(want):
		return rv, nil
	case rv.Type().ConvertibleTo(want):
		return rv.Convert(want), nil
	}

	return reflect.Value{}, &BadArgumentsError{
		Operation: op,
		Reason:    fmt.Sprintf("argument %d: %s is not assignable to %s", pos, rv.Type(), want),
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// results maps a method's return values onto (result, error). Supported
// shapes: (), (T), (error), (T, error).
func results(op string, out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil

	case 1:
		if out[0].Type().Implements(errorType) {
			return nil, asError(out[0])
		}
		return out[0].Interface(), nil

	case 2:
		if !out[1].Type().Implements(errorType) {
			return nil, &UnsupportedSignatureError{
				Operation: op,
				Reason:    "second return value must be error",
			}
		}
		if err := asError(out[1]); err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}

	return nil, &UnsupportedSignatureError{
		Operation: op,
		Reason:    fmt.Sprintf("unsupported return arity %d", len(out)),
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
