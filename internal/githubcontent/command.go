package githubcontent

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corpinfra/cio/internal/config"
	"github.com/corpinfra/cio/internal/githubauth"
	"github.com/corpinfra/cio/internal/utils/flags"
)

const (
	commandUseConstant                 = "ensure-file"
	commandShortDescriptionConstant    = "Converge one repository file toward a local source file"
	commandLongDescriptionConstant     = "ensure-file reads a local source file and creates or updates the matching file in a GitHub repository, skipping the write when the trimmed contents already agree."
	unexpectedArgumentsMessageConstant = "ensure-file does not accept positional arguments"
	flagPathNameConstant               = "path"
	flagPathDescriptionConstant        = "Repository path of the file to converge"
	flagSourceNameConstant             = "source"
	flagSourceDescriptionConstant      = "Local file holding the desired contents"
	flagAuthNameConstant               = "auth"
	flagAuthDescriptionConstant        = "GitHub authentication mode (token or app)"
	defaultBranchNameConstant          = "master"
	missingFlagErrorTemplateConstant   = "flag --%s is required"
	readSourceErrorTemplateConstant    = "reading source file %s: %w"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// SettingsProvider supplies the environment-assembled settings record.
type SettingsProvider func() (config.Settings, error)

// CommandBuilder assembles the Cobra command for the file reconciler.
type CommandBuilder struct {
	LoggerProvider   LoggerProvider
	SettingsProvider SettingsProvider

	repositoryFlags *flags.RepositoryFlagValues
	branchFlags     *flags.BranchFlagValues
}

// Build constructs the ensure-file command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	builder.repositoryFlags = flags.BindRepositoryFlags(command, flags.RepositoryFlagValues{}, flags.RepositoryFlagDefinitions{
		Owner: flags.RepositoryFlagDefinition{
			Name:    flags.DefaultRepositoryOwnerFlagName,
			Usage:   flags.DefaultRepositoryOwnerFlagUsage,
			Enabled: true,
		},
		Name: flags.RepositoryFlagDefinition{
			Name:    flags.DefaultRepositoryNameFlagName,
			Usage:   flags.DefaultRepositoryNameFlagUsage,
			Enabled: true,
		},
	})
	builder.branchFlags = flags.BindBranchFlags(command, flags.BranchFlagValues{Name: defaultBranchNameConstant}, flags.BranchFlagDefinition{
		Name:    flags.DefaultBranchFlagName,
		Usage:   flags.DefaultBranchFlagUsage,
		Enabled: true,
	})

	command.Flags().String(flagPathNameConstant, "", flagPathDescriptionConstant)
	command.Flags().String(flagSourceNameConstant, "", flagSourceDescriptionConstant)
	command.Flags().String(flagAuthNameConstant, githubauth.AuthModeToken, flagAuthDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	ownerLogin := strings.TrimSpace(builder.repositoryFlags.Owner)
	if len(ownerLogin) == 0 {
		return fmt.Errorf(missingFlagErrorTemplateConstant, flags.DefaultRepositoryOwnerFlagName)
	}
	repositoryName := strings.TrimSpace(builder.repositoryFlags.Name)
	if len(repositoryName) == 0 {
		return fmt.Errorf(missingFlagErrorTemplateConstant, flags.DefaultRepositoryNameFlagName)
	}

	filePathValue, _ := command.Flags().GetString(flagPathNameConstant)
	filePath := strings.TrimSpace(filePathValue)
	if len(filePath) == 0 {
		return fmt.Errorf(missingFlagErrorTemplateConstant, flagPathNameConstant)
	}

	sourcePathValue, _ := command.Flags().GetString(flagSourceNameConstant)
	sourcePath := strings.TrimSpace(sourcePathValue)
	if len(sourcePath) == 0 {
		return fmt.Errorf(missingFlagErrorTemplateConstant, flagSourceNameConstant)
	}

	desiredContent, readError := os.ReadFile(sourcePath)
	if readError != nil {
		return fmt.Errorf(readSourceErrorTemplateConstant, sourcePath, readError)
	}

	settings, settingsError := builder.resolveSettings()
	if settingsError != nil {
		return settingsError
	}

	authModeValue, _ := command.Flags().GetString(flagAuthNameConstant)
	client, clientError := githubauth.NewClientForMode(strings.TrimSpace(authModeValue), settings)
	if clientError != nil {
		return clientError
	}

	reconciler := NewReconciler(Dependencies{
		Gateway: NewGitHubRepositoryGateway(client, ownerLogin, repositoryName),
		Logger:  builder.resolveLogger(),
	})

	reconciler.ReconcileBestEffort(command.Context(), Request{
		BranchName:     builder.branchFlags.Name,
		FilePath:       filePath,
		DesiredContent: desiredContent,
	})

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
