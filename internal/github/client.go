// Package github provides a minimal client for verifying GitHub API
// connectivity, used by the doctor command to validate that configured
// credentials can reach the remote host.
package github

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// GetToken returns a GitHub API token from the environment or the gh CLI.
func GetToken(ctx context.Context) (string, error) {
	// Try environment variable first
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	// Try gh CLI
	out, err := exec.CommandContext(ctx, "gh", "auth", "token").Output()
	if err != nil {
		return "", fmt.Errorf("failed to get GitHub token: %w", err)
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}

	return token, nil
}

// NewClient creates a GitHub client configured for the given hostname.
// Supports both github.com and GitHub Enterprise instances.
func NewClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	// Configure for GitHub Enterprise if not github.com
	if hostname != "" && hostname != "github.com" {
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}
		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return client, nil
}

// CheckConnectivity verifies the token can reach the API by fetching the
// authenticated user. Returns the login name on success.
func CheckConnectivity(ctx context.Context, hostname, token string) (string, error) {
	client, err := NewClient(ctx, hostname, token)
	if err != nil {
		return "", err
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("GitHub API request failed: %w", err)
	}
	return user.GetLogin(), nil
}

// HostnameFromRemote extracts the hostname from a git remote URL, returning
// empty for URLs that are not http(s) or ssh-style GitHub remotes.
func HostnameFromRemote(remoteURL string) string {
	if strings.HasPrefix(remoteURL, "git@") {
		// git@hostname:owner/repo.git
		rest := strings.TrimPrefix(remoteURL, "git@")
		if host, _, ok := strings.Cut(rest, ":"); ok {
			return host
		}
		return ""
	}
	u, err := url.Parse(remoteURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
