package githubauth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const (
	assertionBackdateConstant       = time.Minute
	assertionLifetimeConstant       = 10 * time.Minute
	decodeKeyErrorTemplateConstant  = "decoding GitHub App private key: %w"
	parseKeyErrorTemplateConstant   = "parsing GitHub App private key: %w"
	signAssertionErrorTemplate      = "signing GitHub App assertion: %w"
	exchangeTokenErrorTemplate      = "exchanging installation token: %w"
	applicationIDFormatBaseConstant = 10
)

// DecodePrivateKey parses a base64-encoded PEM RSA private key as distributed
// for GitHub Apps.
func DecodePrivateKey(encodedKey string) (*rsa.PrivateKey, error) {
	pemBytes, decodeError := base64.StdEncoding.DecodeString(encodedKey)
	if decodeError != nil {
		return nil, fmt.Errorf(decodeKeyErrorTemplateConstant, decodeError)
	}

	privateKey, parseError := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if parseError != nil {
		return nil, fmt.Errorf(parseKeyErrorTemplateConstant, parseError)
	}
	return privateKey, nil
}

// InstallationTokenSource mints installation tokens by signing an RS256 app
// assertion and exchanging it through the Apps API. Wrap it in
// oauth2.ReuseTokenSource so tokens are reused until they expire.
type InstallationTokenSource struct {
	applicationID  int64
	installationID int64
	privateKey     *rsa.PrivateKey
	now            func() time.Time
}

// NewInstallationTokenSource constructs a token source for one installation.
func NewInstallationTokenSource(applicationID int64, installationID int64, privateKey *rsa.PrivateKey) *InstallationTokenSource {
	return &InstallationTokenSource{
		applicationID:  applicationID,
		installationID: installationID,
		privateKey:     privateKey,
		now:            time.Now,
	}
}

// Token implements oauth2.TokenSource.
func (source *InstallationTokenSource) Token() (*oauth2.Token, error) {
	assertion, signError := source.signAssertion()
	if signError != nil {
		return nil, fmt.Errorf(signAssertionErrorTemplate, signError)
	}

	applicationClient := github.NewClient(nil).WithAuthToken(assertion)
	installationToken, _, exchangeError := applicationClient.Apps.CreateInstallationToken(context.Background(), source.installationID, nil)
	if exchangeError != nil {
		return nil, fmt.Errorf(exchangeTokenErrorTemplate, exchangeError)
	}

	return &oauth2.Token{
		AccessToken: installationToken.GetToken(),
		Expiry:      installationToken.GetExpiresAt().Time,
	}, nil
}

// signAssertion issues the short-lived app JWT. The issue time is backdated
// one minute to absorb clock skew between this host and the GitHub API.
func (source *InstallationTokenSource) signAssertion() (string, error) {
	issuedAt := source.now().Add(-assertionBackdateConstant)

	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(source.applicationID, applicationIDFormatBaseConstant),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(assertionLifetimeConstant)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(source.privateKey)
}
