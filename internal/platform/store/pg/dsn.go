package pg

import (
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Parts are the discrete libpq style connection settings (PGHOST, PGPORT, ...)
type Parts struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// DefaultPort is used when Parts.Port is zero
const DefaultPort = 5432

// URL renders p as a postgres:// connection string
// loopback hosts connect without tls, anything else requires it
func (p Parts) URL() string {
	port := p.Port
	if port == 0 {
		port = DefaultPort
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(port)),
		Path:   "/" + p.Database,
	}
	switch {
	case p.User != "" && p.Password != "":
		u.User = url.UserPassword(p.User, p.Password)
	case p.User != "":
		u.User = url.User(p.User)
	}
	q := url.Values{}
	q.Set("sslmode", SSLMode(p.Host))
	u.RawQuery = q.Encode()
	return u.String()
}

// SSLMode picks disable for local hosts and require for everything else
func SSLMode(host string) string {
	if IsLocalHost(host) {
		return "disable"
	}
	return "require"
}

// IsLocalHost reports whether host names this machine
// an empty host means a local socket
func IsLocalHost(host string) bool {
	switch strings.ToLower(strings.TrimSpace(host)) {
	case "", "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}
