package router

import (
	"github.com/indigo-web/lite/http"
)

// Router is the application side of the server. OnRequest is called for every parsed
// request, OnError for every request that failed to be parsed.
type Router interface {
	OnRequest(request *http.Request) *http.Response
	OnError(err error) *http.Response
}
