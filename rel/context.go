package rel

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// Context carries the ambient machinery of a transformation: a standard
// context, a tracer and a logger. Transformations themselves are pure and
// synchronous; the context only serves observability.
type Context struct {
	context.Context
	id     uuid.UUID
	tracer opentracing.Tracer
	logger *logrus.Entry
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithTracer sets the tracer used for transformation spans.
func WithTracer(t opentracing.Tracer) ContextOption {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// WithLogger sets the logger.
func WithLogger(logger *logrus.Entry) ContextOption {
	return func(ctx *Context) {
		ctx.logger = logger
	}
}

// NewContext creates a Context from a parent context.Context.
func NewContext(ctx context.Context, opts ...ContextOption) *Context {
	c := &Context{
		Context: ctx,
		id:      uuid.NewV4(),
		tracer:  opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	c.logger = c.logger.WithField("context_id", c.id.String())

	return c
}

// NewEmptyContext returns a default context, mostly for tests.
func NewEmptyContext() *Context {
	return NewContext(context.TODO())
}

// ID returns the unique identifier of this context.
func (c *Context) ID() uuid.UUID { return c.id }

// Logger returns the logger carried by this context.
func (c *Context) Logger() *logrus.Entry { return c.logger }

// Span creates a new tracing span as a child of the current one, if any,
// and returns it along with a context carrying the new span.
func (c *Context) Span(opName string, opts ...opentracing.StartSpanOption) (opentracing.Span, *Context) {
	parentSpan := opentracing.SpanFromContext(c.Context)
	if parentSpan != nil {
		opts = append(opts, opentracing.ChildOf(parentSpan.Context()))
	}
	span := c.tracer.StartSpan(opName, opts...)

	nc := *c
	nc.Context = opentracing.ContextWithSpan(c.Context, span)
	return span, &nc
}
