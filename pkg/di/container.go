// Package di provides dependency injection for presenter proxy components.
package di

import (
	"github.com/goliatone/go-presenter-cache/cache"
	"github.com/goliatone/go-presenter-cache/proxy"
)

// Container manages singleton instances of the key builder and observer and
// provides a factory for building proxies that share them. Each proxy still
// owns its private memo store.
type Container struct {
	keys     cache.KeyBuilder
	observer proxy.Observer
	stores   func() cache.Store
}

// Option configures a Container.
type Option func(*Container)

// WithKeyBuilder replaces the default key builder shared by all proxies the
// container produces.
func WithKeyBuilder(keys cache.KeyBuilder) Option {
	return func(c *Container) {
		c.keys = keys
	}
}

// WithObserver attaches a shared observer to every proxy the container
// produces.
func WithObserver(observer proxy.Observer) Option {
	return func(c *Container) {
		c.observer = observer
	}
}

// WithStoreFactory replaces the default per-proxy store constructor.
func WithStoreFactory(factory func() cache.Store) Option {
	return func(c *Container) {
		c.stores = factory
	}
}

// NewContainer creates a DI container. Without options it uses the default
// key builder and the default in-memory store per proxy.
func NewContainer(opts ...Option) *Container {
	c := &Container{}
	for _, opt := range opts {
		opt(c)
	}
	if c.keys == nil {
		c.keys = cache.NewDefaultKeyBuilder()
	}
	if c.stores == nil {
		c.stores = cache.NewStore
	}
	return c
}

// KeyBuilder returns the shared key builder instance.
func (c *Container) KeyBuilder() cache.KeyBuilder {
	return c.keys
}

// NewProxy builds a caching proxy around delegate wired with the
// container's shared components and a fresh memo store.
func (c *Container) NewProxy(delegate any, opts ...proxy.Option) *proxy.Proxy {
	base := []proxy.Option{
		proxy.WithKeyBuilder(c.keys),
		proxy.WithStore(c.stores()),
	}
	if c.observer != nil {
		base = append(base, proxy.WithObserver(c.observer))
	}
	return proxy.New(delegate, append(base, opts...)...)
}
