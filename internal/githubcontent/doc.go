// Package githubcontent keeps files in a remote GitHub repository equal to a
// desired byte content with the minimum necessary writes.
//
// The Reconciler compares trimmed byte buffers, consults spurious-diff
// policies to skip semantically empty changes, falls back to the Git Data API
// when the contents endpoint rejects large files, and pauses on rate-limit
// responses. The remote service is abstracted behind the
// RepositoryContentGateway capability so tests substitute an in-memory
// gateway; GitHubRepositoryGateway is the production implementation over the
// go-github client.
package githubcontent
