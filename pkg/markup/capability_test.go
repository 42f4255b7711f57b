package markup_test

import (
	"errors"
	"testing"

	"github.com/aretw0/folio/internal/testutils"
	"github.com/aretw0/folio/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// both declares two capabilities.
type both struct{ testutils.Element }

func (both) InlineElement() {}
func (both) HeadElement()   {}

func TestCapabilityOf(t *testing.T) {
	tests := []struct {
		name string
		node markup.Node
		want markup.Capability
	}{
		{"plain paragraph", testutils.Paragraph("hello"), markup.Plain},
		{"inline span", testutils.NewSpan("x"), markup.Inline},
		{"head title", testutils.NewTitle("t"), markup.Head},
		{"document", testutils.Document{}, markup.Document},
		{"head wins over inline", both{}, markup.Head},
		{"raw is plain", markup.Raw("<hr>"), markup.Plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup.CapabilityOf(tt.node))
		})
	}
}

func TestHas(t *testing.T) {
	span := testutils.NewSpan("x")

	assert.True(t, markup.Has(span, markup.Plain))
	assert.True(t, markup.Has(span, markup.Inline))
	assert.False(t, markup.Has(span, markup.Head))
	assert.False(t, markup.Has(span, markup.Document))
	assert.False(t, markup.Has(nil, markup.Plain))
}

func TestRequire(t *testing.T) {
	require.NoError(t, markup.Require(testutils.NewSpan("x"), markup.Inline))
	require.NoError(t, markup.Require(testutils.NewSpan("x"), markup.Plain))

	err := markup.Require(testutils.Paragraph("p"), markup.Inline)
	require.Error(t, err)
	assert.True(t, errors.Is(err, markup.ErrCapability))

	var capErr *markup.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, markup.Inline, capErr.Expected)
	assert.Equal(t, markup.Plain, capErr.Actual)
	assert.Equal(t, "testutils.Element", capErr.Node)
	assert.Contains(t, err.Error(), "requires inline, got plain")

	assert.ErrorIs(t, markup.Require(nil, markup.Plain), markup.ErrNilNode)
}

func TestCapability_String(t *testing.T) {
	assert.Equal(t, "plain", markup.Plain.String())
	assert.Equal(t, "inline", markup.Inline.String())
	assert.Equal(t, "head", markup.Head.String())
	assert.Equal(t, "document", markup.Document.String())
	assert.Equal(t, "capability(9)", markup.Capability(9).String())
}
