package simple

import (
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/router"
	"go.uber.org/zap"
)

type (
	Handler      func(*http.Request) *http.Response
	ErrorHandler func(error) *http.Response
)

type simpleRouter struct {
	handler    Handler
	errHandler ErrorHandler
}

// New returns a router calling the handler for every request. If errHandler is nil,
// errors are answered by DefaultErrorHandler with a no-op logger.
func New(handler Handler, errHandler ErrorHandler) router.Router {
	if errHandler == nil {
		errHandler = DefaultErrorHandler(zap.NewNop())
	}

	return simpleRouter{
		handler:    handler,
		errHandler: errHandler,
	}
}

func (r simpleRouter) OnRequest(request *http.Request) *http.Response {
	return r.handler(request)
}

func (r simpleRouter) OnError(err error) *http.Response {
	return r.errHandler(err)
}

// DefaultErrorHandler answers any error with 400 Bad Request without body.
func DefaultErrorHandler(logger *zap.Logger) ErrorHandler {
	return func(err error) *http.Response {
		logger.Info("failed to parse request", zap.Error(err))
		return http.NewResponse(status.BadRequest)
	}
}
