package repolist_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpinfra/cio/internal/repolist"
)

type stubLister struct {
	repositories []repolist.RepositoryDescriptor
	listError    error

	requestedOrganizations []string
}

func (lister *stubLister) ListOrganizationRepositories(executionContext context.Context, organizationLogin string) ([]repolist.RepositoryDescriptor, error) {
	lister.requestedOrganizations = append(lister.requestedOrganizations, organizationLogin)
	if lister.listError != nil {
		return nil, lister.listError
	}
	return lister.repositories, nil
}

type recordingStore struct {
	mirrored    []repolist.RepositoryDescriptor
	loadError   error
	upsertError map[string]error
	deleteError map[string]error

	upsertedNames []string
	deletedNames  []string
}

func (store *recordingStore) ListRepositories(executionContext context.Context) ([]repolist.RepositoryDescriptor, error) {
	if store.loadError != nil {
		return nil, store.loadError
	}
	return store.mirrored, nil
}

func (store *recordingStore) UpsertRepository(executionContext context.Context, descriptor repolist.RepositoryDescriptor) error {
	store.upsertedNames = append(store.upsertedNames, descriptor.Name)
	return store.upsertError[descriptor.Name]
}

func (store *recordingStore) DeleteRepository(executionContext context.Context, repositoryName string) error {
	store.deletedNames = append(store.deletedNames, repositoryName)
	return store.deleteError[repositoryName]
}

func descriptorsNamed(names ...string) []repolist.RepositoryDescriptor {
	descriptors := make([]repolist.RepositoryDescriptor, 0, len(names))
	for _, name := range names {
		descriptors = append(descriptors, repolist.RepositoryDescriptor{Name: name, FullName: "corpinfra/" + name})
	}
	return descriptors
}

func TestRefreshUpsertsRemoteAndDeletesResiduals(testInstance *testing.T) {
	lister := &stubLister{repositories: descriptorsNamed("beta", "gamma", "delta")}
	store := &recordingStore{mirrored: descriptorsNamed("alpha", "beta", "gamma")}

	service := repolist.NewService(lister, store, nil)

	refreshError := service.Refresh(context.Background(), "corpinfra")

	require.NoError(testInstance, refreshError)
	require.Equal(testInstance, []string{"corpinfra"}, lister.requestedOrganizations)
	require.Equal(testInstance, []string{"beta", "gamma", "delta"}, store.upsertedNames)
	require.Equal(testInstance, []string{"alpha"}, store.deletedNames)
}

func TestRefreshWithEmptyMirrorUpsertsEverything(testInstance *testing.T) {
	lister := &stubLister{repositories: descriptorsNamed("alpha", "beta")}
	store := &recordingStore{}

	service := repolist.NewService(lister, store, nil)

	require.NoError(testInstance, service.Refresh(context.Background(), "corpinfra"))
	require.Equal(testInstance, []string{"alpha", "beta"}, store.upsertedNames)
	require.Empty(testInstance, store.deletedNames)
}

func TestRefreshDeletesEverythingWhenRemoteIsEmpty(testInstance *testing.T) {
	lister := &stubLister{}
	store := &recordingStore{mirrored: descriptorsNamed("alpha", "beta")}

	service := repolist.NewService(lister, store, nil)

	require.NoError(testInstance, service.Refresh(context.Background(), "corpinfra"))
	require.Empty(testInstance, store.upsertedNames)

	sort.Strings(store.deletedNames)
	require.Equal(testInstance, []string{"alpha", "beta"}, store.deletedNames)
}

func TestRefreshAbortsWhenListingFails(testInstance *testing.T) {
	listFailure := errors.New("api unavailable")
	lister := &stubLister{listError: listFailure}
	store := &recordingStore{mirrored: descriptorsNamed("alpha")}

	service := repolist.NewService(lister, store, nil)

	refreshError := service.Refresh(context.Background(), "corpinfra")

	require.ErrorIs(testInstance, refreshError, listFailure)
	require.Empty(testInstance, store.upsertedNames)
	require.Empty(testInstance, store.deletedNames)
}

func TestRefreshAbortsWhenMirrorLoadFails(testInstance *testing.T) {
	loadFailure := errors.New("database unavailable")
	lister := &stubLister{repositories: descriptorsNamed("alpha")}
	store := &recordingStore{loadError: loadFailure}

	service := repolist.NewService(lister, store, nil)

	refreshError := service.Refresh(context.Background(), "corpinfra")

	require.ErrorIs(testInstance, refreshError, loadFailure)
	require.Empty(testInstance, store.upsertedNames)
}

func TestRefreshContinuesPastRowWriteFailures(testInstance *testing.T) {
	lister := &stubLister{repositories: descriptorsNamed("beta", "gamma")}
	store := &recordingStore{
		mirrored:    descriptorsNamed("alpha", "beta"),
		upsertError: map[string]error{"beta": errors.New("constraint violation")},
		deleteError: map[string]error{"alpha": errors.New("row locked")},
	}

	service := repolist.NewService(lister, store, nil)

	refreshError := service.Refresh(context.Background(), "corpinfra")

	require.NoError(testInstance, refreshError)
	require.Equal(testInstance, []string{"beta", "gamma"}, store.upsertedNames)
	require.Equal(testInstance, []string{"alpha"}, store.deletedNames)
}
