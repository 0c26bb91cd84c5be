package static

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/router"
	"github.com/indigo-web/lite/router/simple"
	"go.uber.org/zap"
)

var _ router.Router = new(Router)

var (
	// ErrOutsideRoot is reported when a requested path resolves outside the root directory.
	ErrOutsideRoot = errors.New("path resolves outside the root directory")
	// ErrNotText is reported when a file isn't a valid UTF-8 text.
	ErrNotText = errors.New("file is not a valid utf-8 text")
)

const inlineHello = "<h1>Hello</h1>"

// Router serves a website out of a directory. Only GET requests are served.
type Router struct {
	root       string
	logger     *zap.Logger
	errHandler simple.ErrorHandler
}

// New returns a router serving files from root. The root must exist; it is resolved
// to an absolute path with symlinks evaluated.
func New(root string, logger *zap.Logger) (*Router, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}

	return &Router{
		root:       abs,
		logger:     logger,
		errHandler: simple.DefaultErrorHandler(logger),
	}, nil
}

// Root returns the resolved root directory.
func (r *Router) Root() string {
	return r.root
}

func (r *Router) OnRequest(request *http.Request) *http.Response {
	if request.Method() != method.GET {
		return http.NewResponse(status.NotFound)
	}

	switch request.Path() {
	case "/":
		return r.page("index.html")
	case "/hello":
		return r.page("hello.html")
	case "/hello2":
		return http.NewResponse(status.OK, inlineHello)
	default:
		return r.file(request.Path())
	}
}

func (r *Router) OnError(err error) *http.Response {
	return r.errHandler(err)
}

// page answers a fixed route. Such routes always exist, so an unreadable page is
// 200 OK without body rather than 404.
func (r *Router) page(name string) *http.Response {
	contents, ok := r.read(name)
	if !ok {
		return http.NewResponse(status.OK)
	}

	return http.NewResponse(status.OK, contents)
}

// file answers with the file contents, or with 404 if it can't be served for any reason.
func (r *Router) file(name string) *http.Response {
	contents, ok := r.read(name)
	if !ok {
		return http.NewResponse(status.NotFound)
	}

	return http.NewResponse(status.OK, contents)
}

func (r *Router) read(name string) (string, bool) {
	contents, err := r.ReadFile(name)
	if err != nil {
		if errors.Is(err, ErrOutsideRoot) {
			r.logger.Warn("directory traversal attempt", zap.String("path", name))
		}

		return "", false
	}

	return contents, true
}

// ReadFile reads a text file relative to the root. The path is resolved first, and if
// it leads outside the root, ErrOutsideRoot is returned.
func (r *Router) ReadFile(name string) (string, error) {
	path, err := filepath.EvalSymlinks(r.root + string(filepath.Separator) + name)
	if err != nil {
		return "", err
	}

	if !r.contains(path) {
		return "", ErrOutsideRoot
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", ErrNotText
	}

	return string(data), nil
}

func (r *Router) contains(path string) bool {
	if path == r.root {
		return true
	}

	return strings.HasPrefix(path, r.root+string(filepath.Separator))
}
