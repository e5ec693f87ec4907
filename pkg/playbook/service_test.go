package playbook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/config"
)

func testService(t *testing.T, server *httptest.Server) *Service {
	t.Helper()
	svc := NewService(&config.PlaybookConfig{
		BaseURL:  server.URL + "/playbooks",
		CacheTTL: time.Minute,
		// Empty allowlist: httptest hosts are 127.0.0.1.
	}, nil)
	require.NotNil(t, svc)
	return svc
}

func TestService_Excerpt(t *testing.T) {
	t.Run("fetches the playbook for a finding kind", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte("# Tor Caller Response\n1. Disable the key."))
		}))
		defer server.Close()

		svc := testService(t, server)
		got := svc.Excerpt(context.Background(), "UnauthorizedAccess:IAMUser/TorIPCaller")

		assert.Equal(t, "/playbooks/unauthorizedaccess-iamuser-toripcaller.md", gotPath)
		assert.Contains(t, got, "Disable the key.")
	})

	t.Run("caches fetched content", func(t *testing.T) {
		callCount := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callCount++
			_, _ = w.Write([]byte("# Cached"))
		}))
		defer server.Close()

		svc := testService(t, server)
		first := svc.Excerpt(context.Background(), "Recon:EC2/PortProbe")
		second := svc.Excerpt(context.Background(), "Recon:EC2/PortProbe")

		assert.Equal(t, "# Cached", first)
		assert.Equal(t, "# Cached", second)
		assert.Equal(t, 1, callCount) // Second call served from cache
	})

	t.Run("404 is a clean miss and is cached", func(t *testing.T) {
		callCount := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callCount++
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		svc := testService(t, server)
		assert.Empty(t, svc.Excerpt(context.Background(), "Unknown:Kind"))
		assert.Empty(t, svc.Excerpt(context.Background(), "Unknown:Kind"))
		assert.Equal(t, 1, callCount)
	})

	t.Run("server errors fail open", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := testService(t, server)
		assert.Empty(t, svc.Excerpt(context.Background(), "Trojan:EC2/DNSDataExfiltration"))
	})

	t.Run("disallowed domain fails open", func(t *testing.T) {
		svc := NewService(&config.PlaybookConfig{
			BaseURL:        "https://evil.example.com/playbooks",
			CacheTTL:       time.Minute,
			AllowedDomains: []string{"github.com"},
		}, nil)
		require.NotNil(t, svc)

		assert.Empty(t, svc.Excerpt(context.Background(), "Recon:EC2/PortProbe"))
	})

	t.Run("nil service resolves nothing", func(t *testing.T) {
		var svc *Service
		assert.Empty(t, svc.Excerpt(context.Background(), "Recon:EC2/PortProbe"))
	})

	t.Run("no base URL disables the service", func(t *testing.T) {
		assert.Nil(t, NewService(&config.PlaybookConfig{}, nil))
		assert.Nil(t, NewService(nil, nil))
	})

	t.Run("oversized playbooks are cut at a line boundary", func(t *testing.T) {
		long := strings.Repeat("containment line\n", 600) // ~10 KiB
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(long))
		}))
		defer server.Close()

		svc := testService(t, server)
		got := svc.Excerpt(context.Background(), "Recon:EC2/Portscan")

		assert.LessOrEqual(t, len(got), maxExcerptBytes)
		assert.True(t, strings.HasSuffix(got, "containment line"))
	})
}

func TestKindSlug(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"UnauthorizedAccess:IAMUser/TorIPCaller", "unauthorizedaccess-iamuser-toripcaller"},
		{"Recon:EC2/PortProbe", "recon-ec2-portprobe"},
		{"Software and Configuration Checks", "software-and-configuration-checks"},
		{"::weird//", "weird"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kindSlug(tt.kind), "kind %q", tt.kind)
	}
}

func TestConvertToRawURL(t *testing.T) {
	t.Run("github blob URLs convert to raw", func(t *testing.T) {
		got := convertToRawURL("https://github.com/argus-soc/playbooks/blob/main/recon.md")
		assert.Equal(t, "https://raw.githubusercontent.com/argus-soc/playbooks/refs/heads/main/recon.md", got)
	})

	t.Run("raw URLs pass through", func(t *testing.T) {
		raw := "https://raw.githubusercontent.com/argus-soc/playbooks/refs/heads/main/recon.md"
		assert.Equal(t, raw, convertToRawURL(raw))
	})

	t.Run("non-github URLs pass through", func(t *testing.T) {
		other := "https://playbooks.internal.example.com/recon.md"
		assert.Equal(t, other, convertToRawURL(other))
	})
}
