package common

import (
	"crypto/sha256"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, trailing punctuation, and markdown artifacts.
func SanitizeURL(rawURL string) string {
	// Trim all whitespace from edges
	cleaned := strings.TrimSpace(rawURL)

	// Extract URL from markdown link format: [text](url) -> url
	// Example: "[click here](https://example.com)" -> "https://example.com"
	markdownLinkPattern := regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	// Remove common trailing punctuation from copy-paste errors
	// Example: "https://example.com," -> "https://example.com"
	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	// Remove leading markdown/formatting artifacts
	// Example: "(https://example.com)" -> "https://example.com"
	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	// Trim again after removing punctuation (in case there was whitespace before punctuation)
	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}

// SanitizeAndValidateURLs sanitizes all URLs and returns (sanitized URLs, invalid URLs).
// Invalid URLs are those that fail validation even after sanitization.
func SanitizeAndValidateURLs(urls []string) ([]string, []string) {
	sanitized := make([]string, 0, len(urls))
	var invalidURLs []string

	// Must start with http:// or https:// and have a valid domain
	urlPattern := regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9.]*[a-zA-Z0-9](/[^\s]*)?$`)

	for _, rawURL := range urls {
		cleaned := SanitizeURL(rawURL)

		// Empty URLs after sanitization are invalid
		if cleaned == "" {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		// Reject URLs with literal spaces (must be pre-encoded as %20)
		if strings.Contains(cleaned, " ") {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		if !urlPattern.MatchString(cleaned) {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		// Use net/url to validate structure
		parsed, err := url.Parse(cleaned)
		if err != nil {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		if parsed.Host == "" {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		// Check for suspicious characters in domain that indicate malformed URL
		// Example: "https://example.com{}" should fail
		if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		sanitized = append(sanitized, cleaned)
	}

	return sanitized, invalidURLs
}
