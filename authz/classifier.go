package authz

import "net/http"

// Access is the authorization requirement for a route.
type Access int

const (
	// Public routes are served regardless of authentication.
	Public Access = iota
	// Authenticated routes require an attached principal.
	Authenticated
)

// Rule classifies requests matching a method and path pattern.
// Method "*" matches any method; see MatchPath for pattern syntax.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
}

// Classifier is a static, ordered route-classification table. Rules are
// evaluated in declaration order and the first match wins. Requests matching
// no rule are classified Authenticated: the table fails closed.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier from an ordered rule list.
func NewClassifier(rules ...Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the access requirement for a request.
func (c *Classifier) Classify(method, path string) Access {
	for _, r := range c.rules {
		if matchMethod(r.Method, method) && MatchPath(r.Pattern, path) {
			return r.Access
		}
	}
	return Authenticated
}

// DefaultRules returns the standard route table: login, registration,
// operational probes, API docs, and CORS preflight are public; everything
// else requires authentication.
func DefaultRules() []Rule {
	return []Rule{
		{Method: http.MethodPost, Pattern: "/auth/login", Access: Public},
		{Method: http.MethodPost, Pattern: "/auth/register", Access: Public},
		{Method: http.MethodGet, Pattern: "/health", Access: Public},
		{Method: http.MethodGet, Pattern: "/alive", Access: Public},
		{Method: http.MethodGet, Pattern: "/ready", Access: Public},
		{Method: http.MethodGet, Pattern: "/info", Access: Public},
		{Method: http.MethodGet, Pattern: "/docs/*", Access: Public},
		{Method: http.MethodOptions, Pattern: "*", Access: Public},
	}
}

func matchMethod(pattern, method string) bool {
	return pattern == "*" || pattern == method
}
