package playbook

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// githubBlobPattern matches GitHub blob URLs:
// https://github.com/{owner}/{repo}/blob/{ref}/{path...}
var githubBlobPattern = regexp.MustCompile(`^/([^/]+)/([^/]+)/blob/([^/]+)(?:/(.*))?$`)

// kindSlugPattern collapses everything outside [a-z0-9] into dashes when
// turning a finding kind into a playbook file name.
var kindSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// kindSlug converts a source-native finding kind into the file slug the
// playbook repository is keyed by, e.g.
// "UnauthorizedAccess:IAMUser/TorIPCaller" -> "unauthorizedaccess-iamuser-toripcaller".
func kindSlug(kind string) string {
	slug := kindSlugPattern.ReplaceAllString(strings.ToLower(kind), "-")
	return strings.Trim(slug, "-")
}

// convertToRawURL converts a GitHub blob URL to a raw content URL so the
// fetch returns markdown instead of the HTML viewer. Non-GitHub URLs pass
// through unchanged.
func convertToRawURL(playbookURL string) string {
	parsed, err := url.Parse(playbookURL)
	if err != nil {
		return playbookURL
	}

	if parsed.Host == "raw.githubusercontent.com" {
		return playbookURL
	}
	if parsed.Host != "github.com" && parsed.Host != "www.github.com" {
		return playbookURL
	}

	matches := githubBlobPattern.FindStringSubmatch(parsed.Path)
	if matches == nil {
		return playbookURL
	}

	owner, repo, ref, path := matches[1], matches[2], matches[3], matches[4]
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/refs/heads/%s/%s", owner, repo, ref, path)
}

// validatePlaybookURL checks that the URL uses an allowed scheme and
// domain. Playbook URLs are derived from config plus finding kinds that
// ultimately come off the wire, so the allowlist is not optional hygiene.
func validatePlaybookURL(rawURL string, allowedDomains []string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid scheme %q: only http and https allowed", parsed.Scheme)
	}

	if len(allowedDomains) > 0 {
		host := strings.ToLower(parsed.Hostname())
		allowed := false
		for _, domain := range allowedDomains {
			if host == domain || host == "www."+domain {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("domain %q not in allowed list", host)
		}
	}

	return nil
}
