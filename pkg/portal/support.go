package portal

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}

// ParseClientIP prefers the forwarded address. It is client controlled, so
// only use it for reporting.
func ParseClientIP(r *http.Request) string {
	xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	return RemoteHost(r)
}

// RemoteHost is the peer address of the connection, without the port.
func RemoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	return strings.TrimSpace(r.RemoteAddr)
}
