package iwent

import (
	"net/http"

	"golang.org/x/oauth2"
)

// bearerTransport reads the access token from client storage on every request.
// A missing or unreadable token is not an error, the request goes out bare.
type bearerTransport struct {
	tokens TokenStore
	base   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens == nil {
		return t.base.RoundTrip(req)
	}

	token, err := t.tokens.GetItem(req.Context(), TokenKey)
	if err != nil || token == "" {
		return t.base.RoundTrip(req)
	}

	authorized := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "Bearer",
		}),
		Base: t.base,
	}

	return authorized.RoundTrip(req)
}
