package util

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrEmptyDomain = errors.New("empty domain")

// GetDomain returns the lowercase host of the given url or bare domain without the "www." prefix and port.
func GetDomain(rawUrl string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(rawUrl))
	if s == "" {
		return "", ErrEmptyDomain
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("failed to parse url '%s': %w", rawUrl, err)
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return "", ErrEmptyDomain
	}

	return host, nil
}

// SplitList flattens repeated and comma separated query values, dropping blanks.
func SplitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}

	return out
}
