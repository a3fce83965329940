package router

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// reservedSubdomains are labels used for system routes and never treated
// as tenant profiles.
var reservedSubdomains = map[string]struct{}{
	"www":   {},
	"api":   {},
	"admin": {},
	"app":   {},
	"mail":  {},
	"ftp":   {},
}

// SubdomainRewrite returns a pre-routing middleware mapping tenant
// subdomains onto profile pages: a request for alice.<rootDomain> is
// rewritten to /profile/alice, preserving method and body. Hosts without
// a usable subdomain label pass through unmodified. Register with e.Pre
// so the rewrite happens before route matching.
func SubdomainRewrite(rootDomain string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if isSystemPath(req.URL.Path) {
				return next(c)
			}

			sub := extractSubdomain(req.Host, rootDomain)
			if sub == "" {
				return next(c)
			}
			if _, reserved := reservedSubdomains[strings.ToLower(sub)]; reserved {
				return next(c)
			}

			req.URL.Path = "/profile/" + sub
			return next(c)
		}
	}
}

// extractSubdomain returns the candidate tenant label from the host
// header, or "" when there is none. Only the first label is ever
// considered; nested subdomains are not inspected.
func extractSubdomain(host, rootDomain string) string {
	if !strings.Contains(host, rootDomain) {
		return ""
	}

	if rootDomain == "localhost" {
		hostname := strings.Split(host, ":")[0]
		parts := strings.Split(hostname, ".")
		if len(parts) > 1 && parts[0] != "localhost" {
			return parts[0]
		}
		return ""
	}

	hostParts := strings.Split(host, ".")
	rootParts := strings.Split(rootDomain, ".")
	if len(hostParts) > len(rootParts) {
		return hostParts[0]
	}
	return ""
}

// isSystemPath reports whether the path belongs to the API or service
// surface and must never be rewritten, so API calls work on tenant hosts.
func isSystemPath(path string) bool {
	return strings.HasPrefix(path, "/api/") ||
		strings.HasPrefix(path, "/swagger/") ||
		path == "/healthz" ||
		path == "/favicon.ico"
}
