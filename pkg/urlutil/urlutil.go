// Package urlutil builds, inspects and normalizes URLs.
package urlutil

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"utilkit/internal/kind"
	"utilkit/pkg/config"
	"utilkit/pkg/convert"
	apperrors "utilkit/pkg/errors"

	"github.com/PuerkitoBio/purell"
)

// BaseURL returns the server URL from BASE_URL and PORT, defaulting to
// "http://localhost:3000".
func BaseURL() string {
	return config.FromEnv().ServerURL()
}

// BuildURL appends path to base and adds query. Slice values repeat their key,
// nil values are skipped and keys are encoded in sorted order.
//
//	BuildURL("https://api.example.com/v1", "users", map[string]any{"id": []int{1, 2}})
//	// "https://api.example.com/v1/users?id=1&id=2"
func BuildURL(base, p string, query map[string]any) (string, error) {
	u, err := parseAbsolute(base, "base")
	if err != nil {
		return "", err
	}
	if p != "" {
		u.Path = JoinPaths(u.Path, p)
	}

	values := u.Query()
	for k, v := range query {
		addValue(values, k, v)
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}

func addValue(values url.Values, key string, v any) {
	switch kind.Of(v) {
	case kind.Nil:
		return
	case kind.Slice:
		rv := reflect.ValueOf(v)
		for i := range rv.Len() {
			addValue(values, key, rv.Index(i).Interface())
		}
		return
	}
	values.Add(key, convert.ToString(v))
}

func parseAbsolute(raw, param string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidInput, fmt.Sprintf("%s %q is not a valid URL", param, raw))
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, apperrors.InvalidInput(param, fmt.Sprintf("must be an absolute URL, got %q", raw))
	}
	return u, nil
}

// JoinPaths joins path segments with single slashes. A leading slash on the first
// segment and a trailing slash on the last are preserved.
//
//	JoinPaths("/api/", "/v1", "users/") // "/api/v1/users/"
func JoinPaths(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	var segments []string
	for _, p := range parts {
		if t := strings.Trim(p, "/"); t != "" {
			segments = append(segments, t)
		}
	}
	joined := strings.Join(segments, "/")
	if strings.HasPrefix(parts[0], "/") {
		joined = "/" + joined
	}
	if last := parts[len(parts)-1]; strings.HasSuffix(last, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return joined
}

// AddQueryParams sets params on rawURL, replacing existing values of the same keys.
func AddQueryParams(rawURL string, params map[string]any) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInvalidInput, fmt.Sprintf("%q is not a valid URL", rawURL))
	}
	values := u.Query()
	for k, v := range params {
		values.Del(k)
		addValue(values, k, v)
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}

// RemoveQueryParams drops the given keys from rawURL's query.
func RemoveQueryParams(rawURL string, keys ...string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInvalidInput, fmt.Sprintf("%q is not a valid URL", rawURL))
	}
	values := u.Query()
	for _, k := range keys {
		values.Del(k)
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}

// GetQueryParam returns the first value of key. ok is false when the URL does not
// parse or the key is absent.
func GetQueryParam(rawURL, key string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	values := u.Query()
	if !values.Has(key) {
		return "", false
	}
	return values.Get(key), true
}

// ParseQueryString decodes a query string with or without the leading '?'.
// Malformed pairs are skipped.
func ParseQueryString(query string) map[string][]string {
	values, _ := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if values == nil {
		return map[string][]string{}
	}
	return values
}

// ToQueryString encodes params in sorted key order without a leading '?'.
func ToQueryString(params map[string]any) string {
	values := url.Values{}
	for k, v := range params {
		addValue(values, k, v)
	}
	return values.Encode()
}

// IsAbsoluteURL reports whether s has a scheme and a host.
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	return err == nil && u.IsAbs() && u.Host != ""
}

// GetDomain returns the lower-cased host name of rawURL without port or "www."
// prefix. Scheme-less input such as "example.com/path" is accepted.
func GetDomain(rawURL string) string {
	u, err := url.Parse(withScheme(strings.TrimSpace(rawURL)))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

func withScheme(s string) string {
	if s == "" || strings.Contains(s, "://") {
		return s
	}
	return "https://" + strings.TrimPrefix(s, "//")
}

const cleanFlags = purell.FlagsSafe |
	purell.FlagRemoveWWW |
	purell.FlagRemoveTrailingSlash |
	purell.FlagRemoveDotSegments |
	purell.FlagRemoveDuplicateSlashes |
	purell.FlagSortQuery

// CleanURL normalizes a URL for storage or comparison: https is assumed when no
// scheme is given, the host is lower-cased and loses "www.", utm_* tracking
// parameters are dropped, and trailing slashes are removed. Input that is not a
// URL yields "".
func CleanURL(rawURL string) string {
	s := withScheme(strings.TrimSpace(rawURL))
	if s == "" {
		return ""
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}

	values := u.Query()
	for k := range values {
		if strings.HasPrefix(strings.ToLower(k), "utm_") {
			values.Del(k)
		}
	}
	u.RawQuery = values.Encode()

	return purell.NormalizeURL(u, cleanFlags)
}
