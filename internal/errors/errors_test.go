package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestE_Error(t *testing.T) {
	assert.Equal(t, "protocol: malformed response", New(Protocol, "malformed response").Error())
	assert.Equal(t, "transport: login request failed: unexpected EOF",
		Wrap(Transport, "login request failed", io.ErrUnexpectedEOF).Error())
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	base := Wrap(Transport, "lookup request failed", io.ErrUnexpectedEOF)
	wrapped := fmt.Errorf("querying W1AW: %w", base)

	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, Transport, kind)
	assert.True(t, Is(wrapped, Transport))
	assert.False(t, Is(wrapped, Server))
	assert.True(t, stderrors.Is(wrapped, io.ErrUnexpectedEOF))
}

func TestKindOf_ForeignError(t *testing.T) {
	_, ok := KindOf(io.EOF)
	assert.False(t, ok)
	assert.False(t, Is(nil, Usage))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "Not found: ZZ9ZZZ", MessageOf(New(Server, "Not found: ZZ9ZZZ")))
	assert.Equal(t, "EOF", MessageOf(io.EOF))
	assert.Equal(t, "", MessageOf(nil))
}
