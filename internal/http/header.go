package http

import (
	"mime"
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerAccept      = "accept"
	headerContentType = "content-type"

	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// acceptsJSON reports whether the client asked for JSON rather than the text grid.
func acceptsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get(headerAccept), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == contentTypeJSON {
			return true
		}
	}
	return false
}
