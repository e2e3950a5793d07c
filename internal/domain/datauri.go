package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultImageMIMEType is used when an image payload carries no media type.
const DefaultImageMIMEType = "image/png"

const (
	dataURIScheme = "data:"
	base64Marker  = ";base64,"
)

// EncodeDataURI builds a self-contained "data:<mime>;base64,<payload>"
// reference for the given bytes.
func EncodeDataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = DefaultImageMIMEType
	}
	return dataURIScheme + mimeType + base64Marker + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURI decodes a base64 data URI produced by EncodeDataURI and
// returns its media type and payload.
func ParseDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, dataURIScheme) {
		return "", nil, fmt.Errorf("%w: missing data scheme", ErrInvalidFormat)
	}

	header, payload, ok := strings.Cut(strings.TrimPrefix(uri, dataURIScheme), base64Marker)
	if !ok {
		return "", nil, fmt.Errorf("%w: data URI is not base64 encoded", ErrInvalidFormat)
	}

	mimeType := header
	if mimeType == "" {
		mimeType = DefaultImageMIMEType
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid base64 payload: %v", ErrInvalidFormat, err)
	}

	return mimeType, data, nil
}
