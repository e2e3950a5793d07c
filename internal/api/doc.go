// Package api handles incoming HTTP requests for the gallery: the
// server-rendered page, the form submission and the JSON API. It translates
// HTTP concerns to gallery operations and gallery errors to HTTP responses.
package api
