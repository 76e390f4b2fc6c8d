package githubauth

import (
	"fmt"

	"github.com/google/go-github/v66/github"

	"github.com/corpinfra/cio/internal/config"
)

// Authentication modes selectable on the command line.
const (
	AuthModeToken = "token"
	AuthModeApp   = "app"
)

const unknownAuthModeTemplateConstant = "unknown auth mode %q (expected token or app)"

// NewClientForMode builds a GitHub client for the selected authentication
// mode. Token mode falls back to the process environment when the settings
// record carries no token.
func NewClientForMode(authMode string, settings config.Settings) (*github.Client, error) {
	options := ClientOptions{
		CacheDirectory: settings.CacheDirectory,
		UserAgent:      settings.UserAgent,
	}

	switch authMode {
	case AuthModeToken:
		token := settings.GitHub.Token
		if len(token) == 0 {
			resolvedToken, found := ResolveToken(nil)
			if !found {
				return nil, settings.ValidateTokenAuth()
			}
			token = resolvedToken
		}
		return NewTokenClient(token, options), nil
	case AuthModeApp:
		if validationError := settings.ValidateInstallationAuth(); validationError != nil {
			return nil, validationError
		}
		return NewInstallationClient(
			settings.GitHub.ApplicationID,
			settings.GitHub.InstallationID,
			settings.GitHub.EncodedPrivateKey,
			options,
		)
	default:
		return nil, fmt.Errorf(unknownAuthModeTemplateConstant, authMode)
	}
}
