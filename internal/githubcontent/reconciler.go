package githubcontent

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/corpinfra/cio/internal/utils"
)

const (
	sameContentMessageTemplateConstant  = "[github content] File contents at %s are the same, no update needed\n"
	updatedMessageTemplateConstant      = "[github content] Updated file at %s\n"
	createdMessageTemplateConstant      = "[github content] Created file at %s\n"
	getFailedMessageTemplateConstant    = "[github content] Getting the file at %s failed: %v\n"
	rateLimitedMessageTemplateConstant  = "got rate limited, sleeping for %ds\n"
	updateCommitVerbConstant            = "Updating"
	createCommitVerbConstant            = "Creating"
	commitMessageTemplateConstant       = "%s file content %s programatically\n\nThis is done from the cio repo utils::create_or_update_file function."
	rateLimitPauseMarginConstant        = 5 * time.Second
	gatewayNotConfiguredMessageConstant = "repository content gateway not configured"
	listDirectoryErrorTemplateConstant  = "listing directory %s failed: %w"
	fetchBlobErrorTemplateConstant      = "fetching blob %s failed: %w"
	decodeBlobErrorTemplateConstant     = "decoding blob %s failed: %w"
	droppedWriteErrorMessageConstant    = "best-effort reconcile dropped a write error"
	logFieldFilePathConstant            = "file_path"
	logFieldBranchConstant              = "branch"
	logFieldOutcomeConstant             = "outcome"
	leadingSlashConstant                = "/"
	newlineConstant                     = "\n"
)

// Outcome summarizes the terminal state of one reconciliation pass.
type Outcome string

// Reconciliation outcomes.
const (
	OutcomeUnchanged   Outcome = "unchanged"
	OutcomeUpdated     Outcome = "updated"
	OutcomeCreated     Outcome = "created"
	OutcomeRateLimited Outcome = "rate_limited"
	OutcomeSkipped     Outcome = "skipped"
)

// Sleeper abstracts the rate-limit pause so tests substitute a recorder and
// schedulers can cancel the wait through the context.
type Sleeper interface {
	Sleep(executionContext context.Context, duration time.Duration)
}

// SystemSleeper implements Sleeper with a context-aware timer.
type SystemSleeper struct{}

// Sleep blocks for the requested duration or until the context is done.
func (SystemSleeper) Sleep(executionContext context.Context, duration time.Duration) {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-executionContext.Done():
	}
}

// Dependencies captures collaborators required to reconcile file contents.
type Dependencies struct {
	Gateway  RepositoryContentGateway
	Policies []SpuriousDiffPolicy
	Sleeper  Sleeper
	Reporter utils.Reporter
	Logger   *zap.Logger
}

// Request identifies the file a reconciliation pass should converge.
type Request struct {
	BranchName     string
	FilePath       string
	DesiredContent []byte
}

// Reconciler makes one remote file equal a desired byte content while
// avoiding unnecessary writes.
type Reconciler struct {
	dependencies Dependencies
}

// NewReconciler constructs a Reconciler, supplying defaults for optional
// collaborators. The PDF timestamp policy is installed when no policies are
// provided.
func NewReconciler(dependencies Dependencies) *Reconciler {
	if dependencies.Sleeper == nil {
		dependencies.Sleeper = SystemSleeper{}
	}
	if dependencies.Reporter == nil {
		dependencies.Reporter = utils.NewWriterReporter(nil)
	}
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.Policies == nil {
		dependencies.Policies = []SpuriousDiffPolicy{PDFTimestampPolicy{}}
	}
	return &Reconciler{dependencies: dependencies}
}

// Reconcile converges the remote file toward the trimmed desired content and
// returns the terminal outcome. Write failures are returned to the caller;
// use ReconcileBestEffort when periodic re-invocation is expected to absorb
// them.
func (reconciler *Reconciler) Reconcile(executionContext context.Context, request Request) (Outcome, error) {
	if reconciler.dependencies.Gateway == nil {
		return OutcomeSkipped, errors.New(gatewayNotConfiguredMessageConstant)
	}

	desiredContent := TrimHorizontalWhitespace(request.DesiredContent)

	remoteFile, getError := reconciler.dependencies.Gateway.GetFile(executionContext, request.FilePath, request.BranchName)
	if getError == nil {
		return reconciler.reconcileExisting(executionContext, request, desiredContent, remoteFile)
	}

	var rateLimitError *RateLimitError
	if errors.As(getError, &rateLimitError) {
		reconciler.dependencies.Reporter.Printf(rateLimitedMessageTemplateConstant, int(rateLimitError.Reset.Seconds()))
		reconciler.dependencies.Sleeper.Sleep(executionContext, rateLimitError.Reset+rateLimitPauseMarginConstant)
		return OutcomeRateLimited, nil
	}

	var faultError *FaultError
	if errors.As(getError, &faultError) && faultError.TooLarge() {
		return reconciler.reconcileViaBlob(executionContext, request, desiredContent)
	}

	reconciler.dependencies.Reporter.Printf(getFailedMessageTemplateConstant, request.FilePath, getError)

	createError := reconciler.dependencies.Gateway.CreateFile(
		executionContext,
		request.FilePath,
		desiredContent,
		commitMessage(createCommitVerbConstant, request.FilePath),
		request.BranchName,
	)
	reconciler.dependencies.Reporter.Printf(createdMessageTemplateConstant, request.FilePath)
	return OutcomeCreated, createError
}

// ReconcileBestEffort runs Reconcile and drops write errors after logging
// them, matching the fire-and-forget contract expected by periodic callers.
func (reconciler *Reconciler) ReconcileBestEffort(executionContext context.Context, request Request) Outcome {
	outcome, reconcileError := reconciler.Reconcile(executionContext, request)
	if reconcileError != nil {
		reconciler.dependencies.Logger.Debug(
			droppedWriteErrorMessageConstant,
			zap.String(logFieldFilePathConstant, request.FilePath),
			zap.String(logFieldBranchConstant, request.BranchName),
			zap.String(logFieldOutcomeConstant, string(outcome)),
			zap.Error(reconcileError),
		)
	}
	return outcome
}

func (reconciler *Reconciler) reconcileExisting(executionContext context.Context, request Request, desiredContent []byte, remoteFile RemoteFile) (Outcome, error) {
	currentContent := TrimHorizontalWhitespace(remoteFile.Content)

	if bytes.Equal(desiredContent, currentContent) {
		reconciler.dependencies.Reporter.Printf(sameContentMessageTemplateConstant, request.FilePath)
		return OutcomeUnchanged, nil
	}

	if reconciler.onlySpuriousDifference(currentContent, desiredContent) {
		reconciler.dependencies.Reporter.Printf(sameContentMessageTemplateConstant, request.FilePath)
		return OutcomeUnchanged, nil
	}

	updateError := reconciler.dependencies.Gateway.UpdateFile(
		executionContext,
		request.FilePath,
		desiredContent,
		commitMessage(updateCommitVerbConstant, request.FilePath),
		remoteFile.SHA,
		request.BranchName,
	)
	reconciler.dependencies.Reporter.Printf(updatedMessageTemplateConstant, request.FilePath)
	return OutcomeUpdated, updateError
}

// reconcileViaBlob handles files the contents endpoint refuses to inline: the
// directory listing supplies the content hash, and the Git Data API supplies
// the bytes for comparison.
func (reconciler *Reconciler) reconcileViaBlob(executionContext context.Context, request Request, desiredContent []byte) (Outcome, error) {
	parentDirectory := path.Dir(request.FilePath)

	directoryEntries, listError := reconciler.dependencies.Gateway.ListDirectory(executionContext, parentDirectory, request.BranchName)
	if listError != nil {
		return OutcomeSkipped, fmt.Errorf(listDirectoryErrorTemplateConstant, parentDirectory, listError)
	}

	normalizedPath := strings.TrimPrefix(request.FilePath, leadingSlashConstant)

	for _, directoryEntry := range directoryEntries {
		if directoryEntry.Path != normalizedPath {
			continue
		}

		blob, blobError := reconciler.dependencies.Gateway.FetchBlob(executionContext, directoryEntry.SHA)
		if blobError != nil {
			return OutcomeSkipped, fmt.Errorf(fetchBlobErrorTemplateConstant, directoryEntry.SHA, blobError)
		}

		compactedBlob := strings.ReplaceAll(blob.Content, newlineConstant, "")
		decodedContent, decodeError := base64.StdEncoding.DecodeString(compactedBlob)
		if decodeError != nil {
			return OutcomeSkipped, fmt.Errorf(decodeBlobErrorTemplateConstant, directoryEntry.SHA, decodeError)
		}

		if bytes.Equal(desiredContent, TrimHorizontalWhitespace(decodedContent)) {
			reconciler.dependencies.Reporter.Printf(sameContentMessageTemplateConstant, request.FilePath)
			return OutcomeUnchanged, nil
		}

		updateError := reconciler.dependencies.Gateway.UpdateFile(
			executionContext,
			request.FilePath,
			desiredContent,
			commitMessage(updateCommitVerbConstant, request.FilePath),
			directoryEntry.SHA,
			request.BranchName,
		)
		reconciler.dependencies.Reporter.Printf(updatedMessageTemplateConstant, request.FilePath)
		return OutcomeUpdated, updateError
	}

	return OutcomeSkipped, nil
}

func (reconciler *Reconciler) onlySpuriousDifference(currentContent []byte, desiredContent []byte) bool {
	for _, policy := range reconciler.dependencies.Policies {
		if policy.OnlySpuriousDifference(currentContent, desiredContent) {
			return true
		}
	}
	return false
}

func commitMessage(verb string, filePath string) string {
	return fmt.Sprintf(commitMessageTemplateConstant, verb, filePath)
}
