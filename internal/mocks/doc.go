// Package mocks provides hand-written test doubles for the application's
// interfaces. Each mock records its calls so tests can verify interactions.
package mocks
