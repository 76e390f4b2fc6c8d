// Package googleauth exchanges a workplace-suite service-account key for
// OAuth tokens that impersonate a directory administrator.
package googleauth
