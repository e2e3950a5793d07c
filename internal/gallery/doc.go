// Package gallery owns the in-memory collection of generated cats and the
// status of the current submission.
//
// A submission moves through Idle -> Pending -> (Success | Failed) -> Idle.
// All state changes go through the transition methods begin, onSuccess and
// onFailure; Submit and Start drive them around the call to the
// generation.Generator, Submit waiting for the outcome and Start running it
// in the background.
// At most one submission is pending at a time: while one is in flight,
// further submissions and prompt edits are ignored.
package gallery
