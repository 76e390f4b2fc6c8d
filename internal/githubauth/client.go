package githubauth

import (
	"net/http"

	"github.com/google/go-github/v66/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"golang.org/x/oauth2"
)

// ClientOptions carries the shared knobs for building authenticated GitHub
// clients. CacheDirectory enables an on-disk HTTP response cache so repeated
// conditional requests do not consume rate-limit quota.
type ClientOptions struct {
	CacheDirectory string
	UserAgent      string
}

// NewTokenClient builds a GitHub client authenticated with a personal token.
func NewTokenClient(token string, options ClientOptions) *github.Client {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return newClientFromTokenSource(tokenSource, options)
}

// NewInstallationClient builds a GitHub client authenticated as a GitHub App
// installation. The base64-encoded PEM private key signs short-lived app
// assertions that are exchanged for installation tokens on demand.
func NewInstallationClient(applicationID int64, installationID int64, encodedPrivateKey string, options ClientOptions) (*github.Client, error) {
	privateKey, decodeError := DecodePrivateKey(encodedPrivateKey)
	if decodeError != nil {
		return nil, decodeError
	}

	installationSource := NewInstallationTokenSource(applicationID, installationID, privateKey)
	tokenSource := oauth2.ReuseTokenSource(nil, installationSource)
	return newClientFromTokenSource(tokenSource, options), nil
}

func newClientFromTokenSource(tokenSource oauth2.TokenSource, options ClientOptions) *github.Client {
	authenticatedTransport := &oauth2.Transport{
		Source: tokenSource,
		Base:   cachingRoundTripper(options.CacheDirectory),
	}

	client := github.NewClient(&http.Client{Transport: authenticatedTransport})
	if len(options.UserAgent) > 0 {
		client.UserAgent = options.UserAgent
	}
	return client
}

func cachingRoundTripper(cacheDirectory string) http.RoundTripper {
	if len(cacheDirectory) == 0 {
		return http.DefaultTransport
	}
	return httpcache.NewTransport(diskcache.New(cacheDirectory))
}
