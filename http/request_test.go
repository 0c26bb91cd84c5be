package http

import (
	"errors"
	"fmt"
	"testing"
	"unsafe"

	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/http/query"
	"github.com/indigo-web/lite/http/status"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	t.Run("without query", func(t *testing.T) {
		req := NewRequest(method.GET, "/", nil)
		require.Equal(t, method.GET, req.Method())
		require.Equal(t, "/", req.Path())
		require.Nil(t, req.Query())
		require.False(t, req.HasQuery())
	})

	t.Run("clone detaches strings", func(t *testing.T) {
		raw := "/search?name=abc"
		req := NewRequest(method.POST, raw[:7], query.Decode(raw[8:]))
		clone := req.Clone()

		require.Equal(t, req, clone)
		require.NotSame(t, unsafe.StringData(req.Path()), unsafe.StringData(clone.Path()))

		name, found := clone.Query().First("name")
		require.True(t, found)
		require.Equal(t, "abc", name)
	})
}

func TestResponse(t *testing.T) {
	t.Run("no body", func(t *testing.T) {
		resp := NewResponse(status.NotFound)
		require.Equal(t, status.NotFound, resp.StatusCode())
		_, has := resp.Body()
		require.False(t, has)
	})

	t.Run("empty body", func(t *testing.T) {
		body, has := NewResponse(status.OK, "").Body()
		require.True(t, has)
		require.Empty(t, body)
	})

	t.Run("builder", func(t *testing.T) {
		resp := NewResponse(status.OK).Code(status.BadRequest).String("oops")
		require.Equal(t, status.BadRequest, resp.StatusCode())
		body, has := resp.Body()
		require.True(t, has)
		require.Equal(t, "oops", body)
	})

	t.Run("bytes are copied", func(t *testing.T) {
		buff := []byte("hello")
		resp := NewResponse(status.OK).Bytes(buff)
		buff[0] = 'j'
		body, _ := resp.Body()
		require.Equal(t, "hello", body)
	})
}

func TestParseError(t *testing.T) {
	for _, tc := range []struct {
		Err  ParseError
		Text string
	}{
		{ErrInvalidRequest, "InvalidRequest"},
		{ErrInvalidEncoding, "InvalidEncoding"},
		{ErrInvalidProtocol, "InvalidProtocol"},
		{ErrInvalidMethod, "InvalidMethod"},
	} {
		require.EqualError(t, tc.Err, tc.Text)
		require.True(t, IsParseError(tc.Err))
		require.True(t, IsParseError(fmt.Errorf("wrapped: %w", tc.Err)))
	}

	require.False(t, IsParseError(errors.New("InvalidRequest")))
	require.False(t, IsParseError(nil))
}
