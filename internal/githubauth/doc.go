// Package githubauth builds authenticated GitHub API clients from personal
// tokens or GitHub App installation credentials, layering an on-disk HTTP
// cache under the authenticated transport.
package githubauth
