// Package repolist keeps a Postgres mirror of an organization's repository
// list in step with GitHub.
package repolist
