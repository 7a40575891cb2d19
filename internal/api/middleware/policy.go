package middleware

import (
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
)

// RoutePolicy declares the access a path prefix requires. An empty Role
// means any authenticated principal is allowed.
type RoutePolicy struct {
	Prefix string
	Role   string
}

// Authorize enforces a declarative route-policy table, evaluated once per
// request by longest matching prefix. Paths that match no policy pass
// through untouched. Insufficient role is reported as 401, not 403: the
// caller learns only that its credentials do not open this door.
func Authorize(policies []RoutePolicy) echo.MiddlewareFunc {
	sorted := make([]RoutePolicy, len(policies))
	copy(sorted, policies)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			policy, ok := match(sorted, c.Request().URL.Path)
			if !ok {
				return next(c)
			}

			roles, _ := c.Get(RolesKey).([]string)
			if len(roles) == 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if policy.Role == "" {
				return next(c)
			}
			for _, r := range roles {
				if r == policy.Role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "insufficient role")
		}
	}
}

func match(sorted []RoutePolicy, path string) (RoutePolicy, bool) {
	for _, p := range sorted {
		if strings.HasPrefix(path, p.Prefix) {
			return p, true
		}
	}
	return RoutePolicy{}, false
}
