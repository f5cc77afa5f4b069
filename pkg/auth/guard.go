package auth

// Decision is the outcome of a route guard.
type Decision uint8

const (
	Allow Decision = iota
	Redirect
	Forbid
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case Forbid:
		return "forbid"
	}
	return "unknown"
}

type Guard func(p Principal) Decision

// Authenticated sends anonymous principals to the login page.
func Authenticated(p Principal) Decision {
	if !p.Authenticated() {
		return Redirect
	}
	return Allow
}

// Admin requires an authenticated administrator. Anonymous principals are
// redirected to login, never forbidden.
func Admin(p Principal) Decision {
	if d := Authenticated(p); d != Allow {
		return d
	}
	if !p.IsAdmin {
		return Forbid
	}
	return Allow
}

// Evaluate runs guards in order and returns the first non-Allow decision.
func Evaluate(p Principal, guards ...Guard) Decision {
	for _, g := range guards {
		if d := g(p); d != Allow {
			return d
		}
	}
	return Allow
}
