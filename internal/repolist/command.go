package repolist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corpinfra/cio/internal/config"
	"github.com/corpinfra/cio/internal/githubauth"
)

const (
	commandUseConstant                    = "sync-repos"
	commandShortDescriptionConstant       = "Mirror the organization's repository list into the database"
	commandLongDescriptionConstant        = "sync-repos lists every repository of the configured GitHub organization and reconciles the github_repos table to match."
	commandExecutionErrorTemplateConstant = "repository list sync failed: %w"
	unexpectedArgumentsMessageConstant    = "sync-repos does not accept positional arguments"
	flagAuthNameConstant                  = "auth"
	flagAuthDescriptionConstant           = "GitHub authentication mode (token or app)"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// SettingsProvider supplies the environment-assembled settings record.
type SettingsProvider func() (config.Settings, error)

// CommandBuilder assembles the Cobra command for the repository list sync.
type CommandBuilder struct {
	LoggerProvider   LoggerProvider
	SettingsProvider SettingsProvider
}

// Build constructs the sync-repos command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(flagAuthNameConstant, githubauth.AuthModeToken, flagAuthDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	settings, settingsError := builder.resolveSettings()
	if settingsError != nil {
		return settingsError
	}
	if validationError := settings.ValidateOrganization(); validationError != nil {
		return validationError
	}
	if validationError := settings.ValidateDatabase(); validationError != nil {
		return validationError
	}

	authModeValue, _ := command.Flags().GetString(flagAuthNameConstant)
	client, clientError := githubauth.NewClientForMode(strings.TrimSpace(authModeValue), settings)
	if clientError != nil {
		return clientError
	}

	database, openError := OpenDatabase(settings.DatabaseURL)
	if openError != nil {
		return openError
	}
	defer database.Close()

	store := NewPostgresStore(database)
	if migrationError := store.RunMigrations(command.Context()); migrationError != nil {
		return migrationError
	}

	service := NewService(NewGitHubOrganizationLister(client), store, builder.resolveLogger())

	refreshError := service.Refresh(command.Context(), settings.GitHub.Organization)
	if refreshError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, refreshError)
	}

	return nil
}

func (builder *CommandBuilder) resolveSettings() (config.Settings, error) {
	if builder.SettingsProvider == nil {
		return config.Load()
	}
	return builder.SettingsProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
