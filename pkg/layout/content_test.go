package layout_test

import (
	"testing"

	"github.com/aretw0/folio/internal/testutils"
	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockContext records default layout lookups.
type MockContext struct {
	mock.Mock
}

func (m *MockContext) DefaultLayout() layout.Layout {
	args := m.Called()
	if l := args.Get(0); l != nil {
		return l.(layout.Layout)
	}
	return nil
}

func TestPage_LayoutFallback(t *testing.T) {
	l1 := layout.Named("L1")
	l2 := layout.Named("L2")

	ctx := new(MockContext)
	ctx.On("DefaultLayout").Return(l1)

	page := layout.NewPage(ctx, nil)
	ctx.AssertNotCalled(t, "DefaultLayout")

	assert.Equal(t, l1, page.Layout())
	assert.False(t, page.Explicit())
	ctx.AssertNumberOfCalls(t, "DefaultLayout", 1)

	page.SetLayout(l2)
	assert.Equal(t, l2, page.Layout())
	assert.True(t, page.Explicit())
	ctx.AssertNumberOfCalls(t, "DefaultLayout", 1)

	page.SetLayout(nil)
	assert.Equal(t, l1, page.Layout())
}

func TestPage_DefaultReadAtAccessTime(t *testing.T) {
	current := layout.Named("before")
	ctx := layout.ContextFunc(func() layout.Layout { return current })

	page := layout.NewPage(ctx, nil)
	current = layout.Named("after")

	assert.Equal(t, "after", page.Layout().Name())
}

func TestPage_ExplicitIgnoresDefault(t *testing.T) {
	ctx := new(MockContext)
	page := layout.NewPage(ctx, nil, layout.WithLayout(layout.Named("post")))

	assert.Equal(t, "post", page.Layout().Name())
	ctx.AssertNotCalled(t, "DefaultLayout")
}

func TestPage_MissingUsesDefault(t *testing.T) {
	page := layout.NewPage(layout.Static(layout.Named("site")), nil, layout.WithLayout(layout.Missing))

	assert.False(t, page.Explicit())
	assert.Equal(t, "site", page.Layout().Name())
}

func TestPage_NoContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  layout.PublishingContext
	}{
		{"nil context", nil},
		{"nil default", layout.Static(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := layout.NewPage(tt.ctx, nil)
			assert.True(t, layout.IsMissing(page.Layout()))
		})
	}
}

func TestPage_Body(t *testing.T) {
	calls := 0
	page := layout.NewPage(nil, func() markup.Node {
		calls++
		return markup.Group(testutils.Paragraph("a"), testutils.Paragraph("b"))
	}, layout.WithTitle("Home"), layout.WithPath("/index.html"))

	assert.Equal(t, markup.Markup("<p>a</p><p>b</p>"), page.Body().Render())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Home", page.Title())
	assert.Equal(t, "/index.html", page.Path())

	empty := layout.NewPage(nil, nil)
	assert.Equal(t, markup.Markup(""), empty.Body().Render())
}

func TestResolve(t *testing.T) {
	assert.Equal(t, layout.Missing, layout.Resolve(nil))

	page := layout.NewPage(layout.Static(layout.Named("base")), nil)
	assert.Equal(t, "base", layout.Resolve(page).Name())

	var c layout.Content = page
	page.SetLayout(layout.Named("wide"))
	assert.Equal(t, "wide", layout.Resolve(c).Name())
}

func TestResolve_TypedNilPage(t *testing.T) {
	var page *layout.Page
	var c layout.Content = page

	assert.NotPanics(t, func() { layout.Resolve(c) })
	assert.Equal(t, layout.Missing, layout.Resolve(c))
	assert.False(t, page.Explicit())
	assert.Equal(t, "", page.Title())
	assert.Equal(t, "", page.Path())
	assert.Equal(t, markup.Markup(""), page.Body().Render())
}
