// FILE: lixenwraith/beautylog/compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/beautylog"
)

// Builder provides a flexible way to create configured logger adapters for gnet and fasthttp
// It can use an existing *beautylog.Logger instance or create a new one from a *beautylog.Config
type Builder struct {
	logger *beautylog.Logger
	logCfg *beautylog.Config
	opts   []beautylog.Option
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *beautylog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("beautylog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
// If neither WithLogger nor WithConfig is used, a default logger will be created
func (b *Builder) WithConfig(cfg *beautylog.Config, opts ...beautylog.Option) *Builder {
	b.logCfg = cfg
	b.opts = opts
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*beautylog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l := beautylog.NewLogger(b.opts...)
	cfg := b.logCfg
	if cfg == nil {
		cfg = beautylog.DefaultConfig()
	}

	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying *beautylog.Logger instance
func (b *Builder) GetLogger() (*beautylog.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
//	appLogger, err := beautylog.NewBuilder().ConsoleLevelString("info").Build()
//	if err != nil { /* handle error */ }
//
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	gnetLogger, _ := builder.BuildGnet()
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
