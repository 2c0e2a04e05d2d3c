// Package presenter is the declarative setup facility for presenter
// proxies: it names which attribute of a host object is being presented and
// wires up a constructor accepting that value. It is thin glue over the
// proxy package and only ever calls its public construction and invocation
// surface.
package presenter

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-presenter-cache/cache"
	"github.com/goliatone/go-presenter-cache/proxy"
)

// Definition declares a presented attribute and the presentation handlers
// layered on top of the wrapped value. Definitions are value types; the
// With* builders return modified copies.
type Definition struct {
	// Attribute names the host attribute being presented, in snake_case.
	Attribute string

	// Handlers are explicit operations defined on the proxy surface.
	Handlers map[string]proxy.Handler

	// Keys overrides the default key builder for proxies built from this
	// definition.
	Keys cache.KeyBuilder

	// Observer, when set, receives dispatch events from built proxies.
	Observer proxy.Observer
}

// Presents starts a definition for the named attribute.
func Presents(attribute string) Definition {
	return Definition{
		Attribute: attribute,
		Handlers:  make(map[string]proxy.Handler),
	}
}

// WithHandler returns a copy of the definition with an additional explicit
// operation.
func (d Definition) WithHandler(name string, handler proxy.Handler) Definition {
	handlers := make(map[string]proxy.Handler, len(d.Handlers)+1)
	for k, v := range d.Handlers {
		handlers[k] = v
	}
	handlers[name] = handler
	d.Handlers = handlers
	return d
}

// WithKeyBuilder returns a copy of the definition using keys for key
// construction.
func (d Definition) WithKeyBuilder(keys cache.KeyBuilder) Definition {
	d.Keys = keys
	return d
}

// WithObserver returns a copy of the definition emitting dispatch events to
// observer.
func (d Definition) WithObserver(observer proxy.Observer) Definition {
	d.Observer = observer
	return d
}

// Validate checks whether the definition is well formed.
func (d Definition) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Attribute, validation.Required),
		validation.Field(&d.Handlers, validation.By(validHandlers)),
	)
}

func validHandlers(value any) error {
	handlers, _ := value.(map[string]proxy.Handler)
	for name, handler := range handlers {
		if strings.TrimSpace(name) == "" {
			return errors.New("handler names must not be empty")
		}
		if handler == nil {
			return fmt.Errorf("handler %q must not be nil", name)
		}
	}
	return nil
}

// New wraps value in a caching proxy configured by the definition. The
// value is held by reference only; it is never mutated.
func (d Definition) New(value any) (*proxy.Proxy, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var opts []proxy.Option
	if d.Keys != nil {
		opts = append(opts, proxy.WithKeyBuilder(d.Keys))
	}
	if d.Observer != nil {
		opts = append(opts, proxy.WithObserver(d.Observer))
	}
	for name, handler := range d.Handlers {
		opts = append(opts, proxy.WithHandler(name, handler))
	}

	return proxy.New(value, opts...), nil
}

// Wrap extracts the presented attribute from host and returns a proxy
// around it. The attribute resolves to an exported struct field first, then
// to a zero-argument method.
func (d Definition) Wrap(host any) (*proxy.Proxy, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	value, err := attributeValue(host, d.Attribute)
	if err != nil {
		return nil, err
	}

	return d.New(value)
}

func attributeValue(host any, attribute string) (any, error) {
	if host == nil {
		return nil, errors.New("presenter: host must not be nil")
	}

	name := exportedName(attribute)

	rv := reflect.ValueOf(host)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.New("presenter: host must not be nil")
		}
		rv = rv.Elem()
	}

	if rv.Kind() == reflect.Struct {
		if field := rv.FieldByName(name); field.IsValid() && field.CanInterface() {
			return field.Interface(), nil
		}
	}

	if method := reflect.ValueOf(host).MethodByName(name); method.IsValid() {
		mt := method.Type()
		if mt.NumIn() == 0 && mt.NumOut() >= 1 {
			return method.Call(nil)[0].Interface(), nil
		}
	}

	return nil, fmt.Errorf("presenter: host %T has no attribute %q", host, attribute)
}

// exportedName maps a snake_case attribute name onto its exported Go
// spelling: "billing_account" resolves against BillingAccount.
func exportedName(attribute string) string {
	var b strings.Builder
	for _, part := range strings.Split(attribute, "_") {
		if part == "" {
			continue
		}
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}
