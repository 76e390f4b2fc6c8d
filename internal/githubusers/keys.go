// Package githubusers fetches user-level metadata from GitHub.
package githubusers

import (
	"context"
	"strings"

	"github.com/google/go-github/v66/github"
)

const keyListingPageSizeConstant = 100

// PublicSSHKeys returns every public SSH key a user exposes on GitHub,
// trimmed, with blank entries dropped.
func PublicSSHKeys(executionContext context.Context, client *github.Client, userHandle string) ([]string, error) {
	listOptions := &github.ListOptions{PerPage: keyListingPageSizeConstant}

	collectedKeys := []string{}
	for {
		keys, response, listError := client.Users.ListKeys(executionContext, userHandle, listOptions)
		if listError != nil {
			return nil, listError
		}

		for _, key := range keys {
			trimmedKey := strings.TrimSpace(key.GetKey())
			if len(trimmedKey) > 0 {
				collectedKeys = append(collectedKeys, trimmedKey)
			}
		}

		if response.NextPage == 0 {
			break
		}
		listOptions.Page = response.NextPage
	}

	return collectedKeys, nil
}
