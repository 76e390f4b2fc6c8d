// Package githubissues holds small helpers over go-github issue listings.
package githubissues

import (
	"strings"

	"github.com/google/go-github/v66/github"
)

// TitleExists reports whether any issue in the listing carries the search
// text inside its title. Callers use it to avoid filing duplicate issues.
func TitleExists(issues []*github.Issue, searchText string) bool {
	for _, issue := range issues {
		if strings.Contains(issue.GetTitle(), searchText) {
			return true
		}
	}
	return false
}
