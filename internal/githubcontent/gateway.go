package githubcontent

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	rateLimitErrorTemplateConstant  = "rate limited, retry after %s"
	faultErrorTemplateConstant      = "remote fault %d: %s"
	tooLargeErrorIdentifierConstant = "too_large"
)

// RemoteFile describes one file revision fetched through the contents endpoint.
type RemoteFile struct {
	Path    string
	SHA     string
	Content []byte
}

// DirectoryEntry describes one item returned by a directory listing.
type DirectoryEntry struct {
	Path string
	SHA  string
}

// Blob carries raw bytes encoded as a line-wrapped base-64 string.
type Blob struct {
	Content string
}

// RepositoryContentGateway abstracts the content operations of one remote
// repository. Implementations must return *RateLimitError for rate-limit
// responses and *FaultError for structured API faults so callers can branch
// on the failure kind.
type RepositoryContentGateway interface {
	GetFile(executionContext context.Context, filePath string, branchName string) (RemoteFile, error)
	UpdateFile(executionContext context.Context, filePath string, content []byte, commitMessage string, priorSHA string, branchName string) error
	CreateFile(executionContext context.Context, filePath string, content []byte, commitMessage string, branchName string) error
	ListDirectory(executionContext context.Context, directoryPath string, branchName string) ([]DirectoryEntry, error)
	FetchBlob(executionContext context.Context, sha string) (Blob, error)
}

// RateLimitError reports a rate-limited response together with the remote
// service's recommended wait.
type RateLimitError struct {
	Reset time.Duration
}

// Error describes the rate-limit condition.
func (rateLimitError *RateLimitError) Error() string {
	return fmt.Sprintf(rateLimitErrorTemplateConstant, rateLimitError.Reset)
}

// FaultError reports a structured fault returned by the remote API.
type FaultError struct {
	Code    int
	Message string
}

// Error describes the fault.
func (faultError *FaultError) Error() string {
	return fmt.Sprintf(faultErrorTemplateConstant, faultError.Code, faultError.Message)
}

// TooLarge reports whether the fault message carries the identifier the
// contents endpoint uses for files exceeding its inline size limit.
func (faultError *FaultError) TooLarge() bool {
	return strings.Contains(faultError.Message, tooLargeErrorIdentifierConstant)
}
