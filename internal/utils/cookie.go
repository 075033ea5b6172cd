package utils

import (
	"net/url"
	"os"
	"strings"
)

// GetCookieDomain returns the cookie domain for the current environment.
// In production the root domain of CLIENT_URL is used (with a leading dot so
// the cookie is shared between subdomains); in development it stays empty.
func GetCookieDomain() string {
	env := os.Getenv("ENV")
	clientURL := os.Getenv("CLIENT_URL")

	if env != "production" || clientURL == "" {
		return ""
	}

	parsableURL := clientURL
	if !strings.HasPrefix(parsableURL, "http://") && !strings.HasPrefix(parsableURL, "https://") {
		parsableURL = "https://" + parsableURL
	}

	parsedURL, err := url.Parse(parsableURL)
	if err != nil {
		return ""
	}

	host := parsedURL.Hostname()
	if host == "" || host == "localhost" || host == "127.0.0.1" {
		return ""
	}

	parts := strings.Split(host, ".")
	if len(parts) >= 3 && parts[0] == "www" {
		parts = parts[1:]
	}
	if len(parts) >= 2 {
		return "." + parts[len(parts)-2] + "." + parts[len(parts)-1]
	}

	return host
}
