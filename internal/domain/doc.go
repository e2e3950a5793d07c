// Package domain contains the core entities of the application: generated
// cats, the transient generation status, and the data URI encoding used to
// carry image payloads. It has no knowledge of HTTP, Gemini, or storage.
package domain
