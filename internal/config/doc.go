// Package config assembles the environment-driven settings record consumed by
// the GitHub and workspace reconciliation services. Settings are read once at
// command start; missing required values surface as validation errors before
// any network or database work begins.
package config
