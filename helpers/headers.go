package helpers

import (
	"net/http"
	"net/textproto"
	"strings"
)

// connectionHeaders are managed by the outbound transport itself (framing, connection reuse, host
// addressing) and are never copied from the inbound request.
var connectionHeaders = []string{
	"Host",
	"Content-Length",
	"Connection",
	"Keep-Alive",
	"Proxy-Connection",
	"Transfer-Encoding",
	"Upgrade",
	"Te",
	"Trailer",
	// net/http negotiates gzip and decodes it transparently only when the caller did not set it.
	"Accept-Encoding",
}

// ForwardHeaders returns a deep copy of the inbound header set without connection-managed headers
// (see connectionHeaders) and without any header listed in the inbound Connection header.
//
// Parameter in - inbound headers (nil allowed - returns an empty, non-nil header).
//
// Returns: new http.Header; in is never mutated, so one inbound set can be forwarded to many instances concurrently.
//
// Called from service.BuildOutboundRequest for every instance of a fan-out call.
func ForwardHeaders(in http.Header) http.Header {
	out := in.Clone()
	if out == nil {
		return http.Header{}
	}
	for _, v := range in.Values("Connection") {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out.Del(name)
			}
		}
	}
	for _, name := range connectionHeaders {
		delete(out, textproto.CanonicalMIMEHeaderKey(name))
	}
	return out
}
