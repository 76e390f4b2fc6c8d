package repolist

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	listRemoteErrorTemplateConstant = "listing repositories of organization %s failed: %w"
	loadMirrorErrorTemplateConstant = "loading the repository mirror failed: %w"
	upsertFailedMessageConstant     = "upserting a mirrored repository failed"
	deleteFailedMessageConstant     = "deleting a residual mirrored repository failed"
	logFieldRepositoryConstant      = "repository"
)

// RepositoryDescriptor carries the repository attributes the mirror persists.
type RepositoryDescriptor struct {
	Name          string
	FullName      string
	Description   string
	DefaultBranch string
	Private       bool
	Archived      bool
}

// OrganizationLister enumerates every repository of one organization.
type OrganizationLister interface {
	ListOrganizationRepositories(executionContext context.Context, organizationLogin string) ([]RepositoryDescriptor, error)
}

// MirrorStore persists the repository mirror.
type MirrorStore interface {
	ListRepositories(executionContext context.Context) ([]RepositoryDescriptor, error)
	UpsertRepository(executionContext context.Context, descriptor RepositoryDescriptor) error
	DeleteRepository(executionContext context.Context, repositoryName string) error
}

// Service converges the mirror toward the organization's current repository
// list: every remote repository is upserted and every mirrored repository the
// organization no longer has is removed.
type Service struct {
	lister OrganizationLister
	store  MirrorStore
	logger *zap.Logger
}

// NewService constructs a Service. A nil logger falls back to zap.NewNop().
func NewService(lister OrganizationLister, store MirrorStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{lister: lister, store: store, logger: logger}
}

// Refresh performs one reconciliation pass. Listing failures abort; per-row
// write failures are logged and the pass continues so a single bad row cannot
// stall the rest of the mirror.
func (service *Service) Refresh(executionContext context.Context, organizationLogin string) error {
	remoteRepositories, listError := service.lister.ListOrganizationRepositories(executionContext, organizationLogin)
	if listError != nil {
		return fmt.Errorf(listRemoteErrorTemplateConstant, organizationLogin, listError)
	}

	mirroredRepositories, loadError := service.store.ListRepositories(executionContext)
	if loadError != nil {
		return fmt.Errorf(loadMirrorErrorTemplateConstant, loadError)
	}

	residualNames := make(map[string]struct{}, len(mirroredRepositories))
	for _, mirroredRepository := range mirroredRepositories {
		residualNames[mirroredRepository.Name] = struct{}{}
	}

	for _, remoteRepository := range remoteRepositories {
		if upsertError := service.store.UpsertRepository(executionContext, remoteRepository); upsertError != nil {
			service.logger.Warn(
				upsertFailedMessageConstant,
				zap.String(logFieldRepositoryConstant, remoteRepository.Name),
				zap.Error(upsertError),
			)
		}
		delete(residualNames, remoteRepository.Name)
	}

	for residualName := range residualNames {
		if deleteError := service.store.DeleteRepository(executionContext, residualName); deleteError != nil {
			service.logger.Warn(
				deleteFailedMessageConstant,
				zap.String(logFieldRepositoryConstant, residualName),
				zap.Error(deleteError),
			)
		}
	}

	return nil
}
