package locale

import (
	"net/http"
	"net/url"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultExcludePattern matches paths that are never locale-qualified:
// static assets, the JSON API and health probes.
const DefaultExcludePattern = `^/(static|api|health|healthz|favicon\.ico|robots\.txt)(/|$)`

type RouterOptions struct {
	Resolver Resolver
	Exclude  *regexp.Regexp
	Logger   *zap.Logger
}

// Router redirects every non-excluded path without a locale prefix to
// "/<locale><path>", keeping the query string.
func Router(opts RouterOptions) gin.HandlerFunc {
	if opts.Resolver == nil {
		opts.Resolver = Fixed(Default)
	}
	if opts.Exclude == nil {
		opts.Exclude = regexp.MustCompile(DefaultExcludePattern)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	_, negotiated := opts.Resolver.(*Negotiator)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if opts.Exclude.MatchString(path) || HasPrefix(path) {
			c.Next()
			return
		}

		if negotiated {
			c.Header("Vary", "Accept-Language")
		}
		target := RedirectTarget(c.Request.URL, opts.Resolver.Resolve(c.Request))
		opts.Logger.Debug("locale redirect", zap.String("from", path), zap.String("to", target))
		c.Redirect(http.StatusTemporaryRedirect, target)
		c.Abort()
	}
}

// RedirectTarget prefixes u's path with l, keeping its original escaping.
func RedirectTarget(u *url.URL, l Locale) string {
	prefix := "/" + string(l)
	target := url.URL{
		Path:     prefix + u.Path,
		RawPath:  prefix + u.EscapedPath(),
		RawQuery: u.RawQuery,
	}
	return target.String()
}
