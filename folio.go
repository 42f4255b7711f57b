package folio

import (
	"sync/atomic"

	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/markup"
)

// Version is the library version.
const Version = "0.1.0"

type contextHolder struct {
	ctx layout.PublishingContext
}

var defaultContext atomic.Pointer[contextHolder]

// SetDefaultContext installs the process-wide publishing context.
// Call it once, before any page created with NewPage resolves its layout.
func SetDefaultContext(ctx layout.PublishingContext) {
	defaultContext.Store(&contextHolder{ctx: ctx})
}

// DefaultContext returns the process-wide publishing context, or nil if none
// has been installed.
func DefaultContext() layout.PublishingContext {
	if h := defaultContext.Load(); h != nil {
		return h.ctx
	}
	return nil
}

// sharedContext reads the process-wide context on every lookup, so pages can
// be created before SetDefaultContext runs.
type sharedContext struct{}

func (sharedContext) DefaultLayout() layout.Layout {
	ctx := DefaultContext()
	if ctx == nil {
		return layout.Missing
	}
	return ctx.DefaultLayout()
}

// Shared returns a publishing context that delegates to DefaultContext at
// resolution time.
func Shared() layout.PublishingContext {
	return sharedContext{}
}

// NewPage creates a page bound to the process-wide publishing context.
// Code that owns its own context should call layout.NewPage instead.
func NewPage(body layout.BodyFunc, opts ...layout.PageOption) *layout.Page {
	return layout.NewPage(Shared(), body, opts...)
}

// Body is a convenience for pages whose body is a fixed sequence of nodes.
func Body(nodes ...markup.Node) layout.BodyFunc {
	return func() markup.Node {
		return markup.Group(nodes...)
	}
}
