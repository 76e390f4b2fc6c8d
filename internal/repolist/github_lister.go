package repolist

import (
	"context"

	"github.com/google/go-github/v66/github"
)

const (
	listingPageSizeConstant       = 100
	listingRepositoryTypeConstant = "all"
)

// GitHubOrganizationLister implements OrganizationLister over the go-github
// organization listing endpoint.
type GitHubOrganizationLister struct {
	client *github.Client
}

// NewGitHubOrganizationLister binds a go-github client.
func NewGitHubOrganizationLister(client *github.Client) *GitHubOrganizationLister {
	return &GitHubOrganizationLister{client: client}
}

// ListOrganizationRepositories walks every page of the organization's
// repository list, including private and archived repositories.
func (lister *GitHubOrganizationLister) ListOrganizationRepositories(executionContext context.Context, organizationLogin string) ([]RepositoryDescriptor, error) {
	listOptions := &github.RepositoryListByOrgOptions{
		Type:        listingRepositoryTypeConstant,
		ListOptions: github.ListOptions{PerPage: listingPageSizeConstant},
	}

	descriptors := []RepositoryDescriptor{}
	for {
		repositories, response, listError := lister.client.Repositories.ListByOrg(executionContext, organizationLogin, listOptions)
		if listError != nil {
			return nil, listError
		}

		for _, repository := range repositories {
			descriptors = append(descriptors, RepositoryDescriptor{
				Name:          repository.GetName(),
				FullName:      repository.GetFullName(),
				Description:   repository.GetDescription(),
				DefaultBranch: repository.GetDefaultBranch(),
				Private:       repository.GetPrivate(),
				Archived:      repository.GetArchived(),
			})
		}

		if response.NextPage == 0 {
			break
		}
		listOptions.Page = response.NextPage
	}

	return descriptors, nil
}
