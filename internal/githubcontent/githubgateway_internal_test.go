package githubcontent

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/require"
)

func TestTranslateGitHubErrorMapsRateLimits(testInstance *testing.T) {
	apiError := &github.RateLimitError{
		Rate: github.Rate{Reset: github.Timestamp{Time: time.Now().Add(5 * time.Second)}},
	}

	translatedError := translateGitHubError(apiError)

	var rateLimitError *RateLimitError
	require.ErrorAs(testInstance, translatedError, &rateLimitError)
	require.Greater(testInstance, rateLimitError.Reset, time.Duration(0))
	require.LessOrEqual(testInstance, rateLimitError.Reset, 5*time.Second)
}

func TestTranslateGitHubErrorFloorsExpiredResets(testInstance *testing.T) {
	apiError := &github.RateLimitError{
		Rate: github.Rate{Reset: github.Timestamp{Time: time.Now().Add(-time.Minute)}},
	}

	translatedError := translateGitHubError(apiError)

	var rateLimitError *RateLimitError
	require.ErrorAs(testInstance, translatedError, &rateLimitError)
	require.Equal(testInstance, time.Duration(0), rateLimitError.Reset)
}

func TestTranslateGitHubErrorFoldsNestedCodesIntoFaults(testInstance *testing.T) {
	apiError := &github.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusForbidden},
		Message:  "blob is too large",
		Errors:   []github.Error{{Code: "too_large"}},
	}

	translatedError := translateGitHubError(apiError)

	var faultError *FaultError
	require.ErrorAs(testInstance, translatedError, &faultError)
	require.Equal(testInstance, http.StatusForbidden, faultError.Code)
	require.Equal(testInstance, "blob is too large too_large", faultError.Message)
	require.True(testInstance, faultError.TooLarge())
}

func TestTranslateGitHubErrorPassesUnknownErrorsThrough(testInstance *testing.T) {
	apiError := errors.New("connection reset")

	require.Equal(testInstance, apiError, translateGitHubError(apiError))
}

func TestNormalizeAPIPathStripsOneLeadingSlash(testInstance *testing.T) {
	require.Equal(testInstance, "README.md", normalizeAPIPath("/README.md"))
	require.Equal(testInstance, "README.md", normalizeAPIPath("README.md"))
	require.Equal(testInstance, "/nested/file.md", normalizeAPIPath("//nested/file.md"))
}
