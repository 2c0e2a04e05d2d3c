package di

import (
	"testing"

	"github.com/goliatone/go-presenter-cache/cache"
	"github.com/goliatone/go-presenter-cache/proxy"
)

type clock struct {
	ticks int
}

func (c *clock) Now() int {
	c.ticks++
	return c.ticks
}

func TestNewContainer_Defaults(t *testing.T) {
	c := NewContainer()

	if c.KeyBuilder() == nil {
		t.Fatal("container must provide a default key builder")
	}
}

func TestContainer_SharedKeyBuilder(t *testing.T) {
	c := NewContainer()

	a := c.NewProxy(&clock{})
	b := c.NewProxy(&clock{})

	if a == nil || b == nil {
		t.Fatal("NewProxy returned nil")
	}
	if a.ID() == b.ID() {
		t.Error("each proxy must have its own identity")
	}
}

func TestContainer_IndependentStores(t *testing.T) {
	c := NewContainer()

	first := &clock{}
	second := &clock{}

	pa := c.NewProxy(first)
	pb := c.NewProxy(second)

	if _, err := pa.Invoke("now"); err != nil {
		t.Fatal(err)
	}
	if _, err := pb.Invoke("now"); err != nil {
		t.Fatal(err)
	}

	// Each delegate executed once: the proxies do not share memo entries
	// even though the operation name and arguments are identical.
	if first.ticks != 1 || second.ticks != 1 {
		t.Errorf("ticks = (%d, %d), want (1, 1)", first.ticks, second.ticks)
	}
}

func TestContainer_Options(t *testing.T) {
	var events []proxy.EventData
	observer := observerFunc(func(data proxy.EventData) {
		events = append(events, data)
	})

	stores := 0
	c := NewContainer(
		WithKeyBuilder(cache.NewDefaultKeyBuilder()),
		WithObserver(observer),
		WithStoreFactory(func() cache.Store {
			stores++
			return cache.NewStore()
		}),
	)

	p := c.NewProxy(&clock{})
	if _, err := p.Invoke("now"); err != nil {
		t.Fatal(err)
	}

	if stores != 1 {
		t.Errorf("store factory called %d times, want 1", stores)
	}
	if len(events) == 0 {
		t.Error("shared observer received no events")
	}
}

type observerFunc func(proxy.EventData)

func (f observerFunc) On(data proxy.EventData) { f(data) }
