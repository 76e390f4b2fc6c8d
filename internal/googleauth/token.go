package googleauth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/corpinfra/cio/internal/config"
)

// Scopes requested for the workplace-suite service account.
const (
	ScopeDirectoryGroup    = "https://www.googleapis.com/auth/admin.directory.group"
	ScopeDirectoryCalendar = "https://www.googleapis.com/auth/admin.directory.resource.calendar"
	ScopeDirectoryUser     = "https://www.googleapis.com/auth/admin.directory.user"
	ScopeGroupsSettings    = "https://www.googleapis.com/auth/apps.groups.settings"
	ScopeSpreadsheets      = "https://www.googleapis.com/auth/spreadsheets"
	ScopeDrive             = "https://www.googleapis.com/auth/drive"
)

const (
	materializedKeyFileNameConstant = "gsuite_key.json"
	keyFilePermissionsConstant      = 0o600
	decodeKeyErrorTemplateConstant  = "decoding workplace-suite key: %w"
	writeKeyErrorTemplateConstant   = "materializing workplace-suite key: %w"
	readKeyErrorTemplateConstant    = "reading workplace-suite credential file %s: %w"
	parseKeyErrorTemplateConstant   = "parsing workplace-suite credential file: %w"
	fetchTokenErrorTemplateConstant = "fetching workplace-suite token: %w"
	emptyAccessTokenMessageConstant = "workplace-suite token exchange returned an empty access token"
	missingCredentialSourceConstant = "no workplace-suite credential file or encoded key configured"
)

var tokenScopes = []string{
	ScopeDirectoryGroup,
	ScopeDirectoryCalendar,
	ScopeDirectoryUser,
	ScopeGroupsSettings,
	ScopeSpreadsheets,
	ScopeDrive,
}

// ResolveCredentialFile returns the path of the service-account key file.
// A configured file path wins; otherwise the base64-encoded key is decoded
// and written to the system temporary directory.
func ResolveCredentialFile(workspace config.WorkspaceSettings) (string, error) {
	if len(workspace.CredentialFilePath) > 0 {
		return workspace.CredentialFilePath, nil
	}
	if len(workspace.EncodedKey) == 0 {
		return "", errors.New(missingCredentialSourceConstant)
	}

	decodedKey, decodeError := base64.StdEncoding.DecodeString(workspace.EncodedKey)
	if decodeError != nil {
		return "", fmt.Errorf(decodeKeyErrorTemplateConstant, decodeError)
	}

	keyFilePath := filepath.Join(os.TempDir(), materializedKeyFileNameConstant)
	if writeError := os.WriteFile(keyFilePath, decodedKey, keyFilePermissionsConstant); writeError != nil {
		return "", fmt.Errorf(writeKeyErrorTemplateConstant, writeError)
	}
	return keyFilePath, nil
}

// NewTokenSource builds a token source impersonating the configured subject
// with the full scope set the automations require.
func NewTokenSource(executionContext context.Context, workspace config.WorkspaceSettings) (oauth2.TokenSource, error) {
	credentialFilePath, resolveError := ResolveCredentialFile(workspace)
	if resolveError != nil {
		return nil, resolveError
	}

	credentialBytes, readError := os.ReadFile(credentialFilePath)
	if readError != nil {
		return nil, fmt.Errorf(readKeyErrorTemplateConstant, credentialFilePath, readError)
	}

	jwtConfiguration, parseError := google.JWTConfigFromJSON(credentialBytes, tokenScopes...)
	if parseError != nil {
		return nil, fmt.Errorf(parseKeyErrorTemplateConstant, parseError)
	}
	jwtConfiguration.Subject = workspace.Subject

	return jwtConfiguration.TokenSource(executionContext), nil
}

// FetchAccessToken exchanges the service-account key for a bearer token and
// rejects exchanges that yield an empty access token.
func FetchAccessToken(executionContext context.Context, workspace config.WorkspaceSettings) (*oauth2.Token, error) {
	tokenSource, sourceError := NewTokenSource(executionContext, workspace)
	if sourceError != nil {
		return nil, sourceError
	}

	token, fetchError := tokenSource.Token()
	if fetchError != nil {
		return nil, fmt.Errorf(fetchTokenErrorTemplateConstant, fetchError)
	}
	if len(token.AccessToken) == 0 {
		return nil, errors.New(emptyAccessTokenMessageConstant)
	}
	return token, nil
}
