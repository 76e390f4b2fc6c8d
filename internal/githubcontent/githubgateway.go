package githubcontent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
)

const (
	pathIsDirectoryErrorTemplateConstant = "path %s resolves to a directory, not a file"
	errorCodeSeparatorConstant           = " "
)

// GitHubRepositoryGateway implements RepositoryContentGateway for one GitHub
// repository using the go-github client.
type GitHubRepositoryGateway struct {
	client         *github.Client
	ownerLogin     string
	repositoryName string
}

// NewGitHubRepositoryGateway binds a go-github client to one repository.
func NewGitHubRepositoryGateway(client *github.Client, ownerLogin string, repositoryName string) *GitHubRepositoryGateway {
	return &GitHubRepositoryGateway{
		client:         client,
		ownerLogin:     ownerLogin,
		repositoryName: repositoryName,
	}
}

// GetFile fetches one file revision through the contents endpoint.
func (gateway *GitHubRepositoryGateway) GetFile(executionContext context.Context, filePath string, branchName string) (RemoteFile, error) {
	contentOptions := &github.RepositoryContentGetOptions{Ref: branchName}

	fileContent, _, _, getError := gateway.client.Repositories.GetContents(
		executionContext,
		gateway.ownerLogin,
		gateway.repositoryName,
		normalizeAPIPath(filePath),
		contentOptions,
	)
	if getError != nil {
		return RemoteFile{}, translateGitHubError(getError)
	}
	if fileContent == nil {
		return RemoteFile{}, fmt.Errorf(pathIsDirectoryErrorTemplateConstant, filePath)
	}

	decodedContent, decodeError := fileContent.GetContent()
	if decodeError != nil {
		return RemoteFile{}, decodeError
	}

	return RemoteFile{
		Path:    fileContent.GetPath(),
		SHA:     fileContent.GetSHA(),
		Content: []byte(decodedContent),
	}, nil
}

// UpdateFile replaces a file revision guarded by the prior content hash.
func (gateway *GitHubRepositoryGateway) UpdateFile(executionContext context.Context, filePath string, content []byte, commitMessage string, priorSHA string, branchName string) error {
	fileOptions := &github.RepositoryContentFileOptions{
		Message: github.String(commitMessage),
		Content: content,
		SHA:     github.String(priorSHA),
		Branch:  github.String(branchName),
	}

	_, _, updateError := gateway.client.Repositories.UpdateFile(
		executionContext,
		gateway.ownerLogin,
		gateway.repositoryName,
		normalizeAPIPath(filePath),
		fileOptions,
	)
	if updateError != nil {
		return translateGitHubError(updateError)
	}
	return nil
}

// CreateFile creates a file that does not yet exist on the branch.
func (gateway *GitHubRepositoryGateway) CreateFile(executionContext context.Context, filePath string, content []byte, commitMessage string, branchName string) error {
	fileOptions := &github.RepositoryContentFileOptions{
		Message: github.String(commitMessage),
		Content: content,
		Branch:  github.String(branchName),
	}

	_, _, createError := gateway.client.Repositories.CreateFile(
		executionContext,
		gateway.ownerLogin,
		gateway.repositoryName,
		normalizeAPIPath(filePath),
		fileOptions,
	)
	if createError != nil {
		return translateGitHubError(createError)
	}
	return nil
}

// ListDirectory enumerates the entries of one directory on the branch.
func (gateway *GitHubRepositoryGateway) ListDirectory(executionContext context.Context, directoryPath string, branchName string) ([]DirectoryEntry, error) {
	contentOptions := &github.RepositoryContentGetOptions{Ref: branchName}

	_, directoryContent, _, listError := gateway.client.Repositories.GetContents(
		executionContext,
		gateway.ownerLogin,
		gateway.repositoryName,
		normalizeAPIPath(directoryPath),
		contentOptions,
	)
	if listError != nil {
		return nil, translateGitHubError(listError)
	}

	directoryEntries := make([]DirectoryEntry, 0, len(directoryContent))
	for _, item := range directoryContent {
		directoryEntries = append(directoryEntries, DirectoryEntry{
			Path: item.GetPath(),
			SHA:  item.GetSHA(),
		})
	}
	return directoryEntries, nil
}

// FetchBlob retrieves raw file bytes by content hash through the Git Data API.
func (gateway *GitHubRepositoryGateway) FetchBlob(executionContext context.Context, sha string) (Blob, error) {
	blob, _, blobError := gateway.client.Git.GetBlob(executionContext, gateway.ownerLogin, gateway.repositoryName, sha)
	if blobError != nil {
		return Blob{}, translateGitHubError(blobError)
	}
	return Blob{Content: blob.GetContent()}, nil
}

// translateGitHubError maps go-github error values onto the gateway error
// kinds the Reconciler branches on. Nested error codes are folded into the
// fault message so identifiers such as too_large stay observable.
func translateGitHubError(apiError error) error {
	var rateLimitError *github.RateLimitError
	if errors.As(apiError, &rateLimitError) {
		resetDuration := time.Until(rateLimitError.Rate.Reset.Time)
		if resetDuration < 0 {
			resetDuration = 0
		}
		return &RateLimitError{Reset: resetDuration}
	}

	var errorResponse *github.ErrorResponse
	if errors.As(apiError, &errorResponse) {
		messageParts := []string{errorResponse.Message}
		for _, nestedError := range errorResponse.Errors {
			if len(nestedError.Code) > 0 {
				messageParts = append(messageParts, nestedError.Code)
			}
		}

		statusCode := 0
		if errorResponse.Response != nil {
			statusCode = errorResponse.Response.StatusCode
		}

		return &FaultError{
			Code:    statusCode,
			Message: strings.Join(messageParts, errorCodeSeparatorConstant),
		}
	}

	return apiError
}

func normalizeAPIPath(candidatePath string) string {
	return strings.TrimPrefix(candidatePath, "/")
}
