package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	pathutils "github.com/corpinfra/cio/internal/utils/path"
)

// Environment variable names consumed by the settings loader.
const (
	EnvGitHubToken          = "GITHUB_TOKEN"
	EnvGitHubOrganization   = "GITHUB_ORG"
	EnvGitHubAppID          = "GH_APP_ID"
	EnvGitHubInstallationID = "GH_INSTALLATION_ID"
	EnvGitHubPrivateKey     = "GH_PRIVATE_KEY"
	EnvWorkspaceCredential  = "GADMIN_CREDENTIAL_FILE"
	EnvWorkspaceEncodedKey  = "GSUITE_KEY_ENCODED"
	EnvWorkspaceSubject     = "GADMIN_SUBJECT"
	EnvDatabaseURL          = "DATABASE_URL"
)

const (
	productNameConstant                   = "cio"
	productVersionConstant                = "0.4.0"
	userAgentTemplateConstant             = "%s/%s"
	defaultCacheDirectoryConstant         = "~/.cache/github"
	integerParseErrorTemplateConstant     = "environment variable %s holds a non-integer value %q: %w"
	missingVariableErrorTemplateConstant  = "required environment variable %s is not set"
	missingWorkspaceKeyErrorConstant      = "either " + EnvWorkspaceCredential + " or " + EnvWorkspaceEncodedKey + " must be set"
	integerBaseConstant                   = 10
	integerBitSizeConstant                = 64
)

// GitHubSettings describes GitHub authentication and organization inputs.
type GitHubSettings struct {
	Token             string
	Organization      string
	ApplicationID     int64
	InstallationID    int64
	EncodedPrivateKey string
}

// WorkspaceSettings describes workplace-suite service-account inputs.
type WorkspaceSettings struct {
	CredentialFilePath string
	EncodedKey         string
	Subject            string
}

// Settings is the process-wide configuration record assembled from the environment.
type Settings struct {
	GitHub         GitHubSettings
	Workspace      WorkspaceSettings
	DatabaseURL    string
	CacheDirectory string
	UserAgent      string
}

// Load reads every supported environment variable into a Settings record.
// Values are captured verbatim; integer identifiers fail Load when present but
// malformed. Presence requirements are enforced by the per-mode validators.
func Load() (Settings, error) {
	applicationID, applicationIDError := readOptionalInteger(EnvGitHubAppID)
	if applicationIDError != nil {
		return Settings{}, applicationIDError
	}

	installationID, installationIDError := readOptionalInteger(EnvGitHubInstallationID)
	if installationIDError != nil {
		return Settings{}, installationIDError
	}

	settings := Settings{
		GitHub: GitHubSettings{
			Token:             readTrimmed(EnvGitHubToken),
			Organization:      readTrimmed(EnvGitHubOrganization),
			ApplicationID:     applicationID,
			InstallationID:    installationID,
			EncodedPrivateKey: readTrimmed(EnvGitHubPrivateKey),
		},
		Workspace: WorkspaceSettings{
			CredentialFilePath: readTrimmed(EnvWorkspaceCredential),
			EncodedKey:         readTrimmed(EnvWorkspaceEncodedKey),
			Subject:            readTrimmed(EnvWorkspaceSubject),
		},
		DatabaseURL:    readTrimmed(EnvDatabaseURL),
		CacheDirectory: pathutils.NewHomeExpander().Expand(defaultCacheDirectoryConstant),
		UserAgent:      fmt.Sprintf(userAgentTemplateConstant, productNameConstant, productVersionConstant),
	}

	return settings, nil
}

// ValidateTokenAuth confirms the personal-token authentication inputs exist.
func (settings Settings) ValidateTokenAuth() error {
	if len(settings.GitHub.Token) == 0 {
		return missingVariableError(EnvGitHubToken)
	}
	return nil
}

// ValidateInstallationAuth confirms the app-installation authentication inputs exist.
func (settings Settings) ValidateInstallationAuth() error {
	if settings.GitHub.ApplicationID == 0 {
		return missingVariableError(EnvGitHubAppID)
	}
	if settings.GitHub.InstallationID == 0 {
		return missingVariableError(EnvGitHubInstallationID)
	}
	if len(settings.GitHub.EncodedPrivateKey) == 0 {
		return missingVariableError(EnvGitHubPrivateKey)
	}
	return nil
}

// ValidateWorkspaceAuth confirms the workplace-suite token inputs exist.
func (settings Settings) ValidateWorkspaceAuth() error {
	if len(settings.Workspace.CredentialFilePath) == 0 && len(settings.Workspace.EncodedKey) == 0 {
		return errors.New(missingWorkspaceKeyErrorConstant)
	}
	if len(settings.Workspace.Subject) == 0 {
		return missingVariableError(EnvWorkspaceSubject)
	}
	return nil
}

// ValidateOrganization confirms the organization login is configured.
func (settings Settings) ValidateOrganization() error {
	if len(settings.GitHub.Organization) == 0 {
		return missingVariableError(EnvGitHubOrganization)
	}
	return nil
}

// ValidateDatabase confirms the mirror database DSN is configured.
func (settings Settings) ValidateDatabase() error {
	if len(settings.DatabaseURL) == 0 {
		return missingVariableError(EnvDatabaseURL)
	}
	return nil
}

func readTrimmed(variableName string) string {
	return strings.TrimSpace(os.Getenv(variableName))
}

func readOptionalInteger(variableName string) (int64, error) {
	rawValue := readTrimmed(variableName)
	if len(rawValue) == 0 {
		return 0, nil
	}

	parsedValue, parseError := strconv.ParseInt(rawValue, integerBaseConstant, integerBitSizeConstant)
	if parseError != nil {
		return 0, fmt.Errorf(integerParseErrorTemplateConstant, variableName, rawValue, parseError)
	}
	return parsedValue, nil
}

func missingVariableError(variableName string) error {
	return fmt.Errorf(missingVariableErrorTemplateConstant, variableName)
}
