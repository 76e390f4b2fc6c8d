// Package flags provides helpers for binding standardized repository context
// flags to Cobra commands.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// DefaultRepositoryOwnerFlagName exposes the shared repository owner flag name.
	DefaultRepositoryOwnerFlagName = "repository-owner"
	// DefaultRepositoryOwnerFlagUsage describes the shared repository owner flag purpose.
	DefaultRepositoryOwnerFlagUsage = "GitHub account owning the target repository"
	// DefaultRepositoryNameFlagName exposes the shared repository name flag name.
	DefaultRepositoryNameFlagName = "repository-name"
	// DefaultRepositoryNameFlagUsage describes the shared repository name flag purpose.
	DefaultRepositoryNameFlagUsage = "Name of the target repository"
	// DefaultBranchFlagName exposes the shared branch flag name.
	DefaultBranchFlagName = "branch"
	// DefaultBranchFlagUsage describes the shared branch flag purpose.
	DefaultBranchFlagUsage = "Branch to operate on"
)

// RepositoryFlagDefinition captures configuration for repository context flags.
type RepositoryFlagDefinition struct {
	Name    string
	Usage   string
	Enabled bool
}

// RepositoryFlagDefinitions groups repository context flag definitions.
type RepositoryFlagDefinitions struct {
	Owner RepositoryFlagDefinition
	Name  RepositoryFlagDefinition
}

// RepositoryFlagValues stores repository context flag values.
type RepositoryFlagValues struct {
	Owner string
	Name  string
}

// BindRepositoryFlags attaches repository context flags to the provided command.
func BindRepositoryFlags(command *cobra.Command, defaults RepositoryFlagValues, definitions RepositoryFlagDefinitions) *RepositoryFlagValues {
	values := defaults
	if command == nil {
		return &values
	}

	flagSet := command.Flags()
	bindStringFlag(flagSet, &values.Owner, definitions.Owner, defaults.Owner)
	bindStringFlag(flagSet, &values.Name, definitions.Name, defaults.Name)

	return &values
}

// BranchFlagDefinition captures configuration for branch context flags.
type BranchFlagDefinition struct {
	Name    string
	Usage   string
	Enabled bool
}

// BranchFlagValues stores branch context flag values.
type BranchFlagValues struct {
	Name string
}

// BindBranchFlags attaches branch context flags to the provided command.
func BindBranchFlags(command *cobra.Command, defaults BranchFlagValues, definition BranchFlagDefinition) *BranchFlagValues {
	values := defaults
	if command == nil {
		return &values
	}
	if !definition.Enabled || len(definition.Name) == 0 {
		return &values
	}

	command.Flags().StringVar(&values.Name, definition.Name, defaults.Name, definition.Usage)
	return &values
}

func bindStringFlag(flagSet *pflag.FlagSet, target *string, definition RepositoryFlagDefinition, defaultValue string) {
	if flagSet == nil {
		return
	}
	if !definition.Enabled || len(definition.Name) == 0 {
		return
	}
	flagSet.StringVar(target, definition.Name, defaultValue, definition.Usage)
}
