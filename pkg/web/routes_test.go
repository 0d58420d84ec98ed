package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PancyStudios/SentinelBotGo/pkg/automod"
	"github.com/PancyStudios/SentinelBotGo/pkg/config"
	"github.com/PancyStudios/SentinelBotGo/pkg/policy"
)

// newTestServer builds a server over a fresh file-backed store. The file
// path is returned so tests can assert on what was flushed to disk.
func newTestServer(t *testing.T) (*Server, *policy.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "policies.json")
	store, err := policy.NewStore(policy.NewFileStore(path))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	engine := automod.NewEngine(store, config.AutomodConfig{
		MaxMessages:    10,
		RateWindow:     time.Minute,
		RateTimeout:    5 * time.Minute,
		MaxMentions:    5,
		MentionTimeout: 2 * time.Minute,
		WarnThreshold:  3,
		MinAccountAge:  7 * 24 * time.Hour,
	}, nil, nil)

	s := NewServer(engine)
	SetupAPIRoutes(s)
	return s, store, path
}

func TestGuildPolicyEndpointDoesNotCreatePolicies(t *testing.T) {
	s, store, path := newTestServer(t)

	// Un escáner que recorre ids desconocidos no debe dejar rastro
	for _, id := range []string{"111", "222", "333"} {
		req := httptest.NewRequest(http.MethodGet, "/api/guilds/"+id+"/policy", nil)
		rec := httptest.NewRecorder()
		s.Engine().ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("GET guild %s: status = %d, want %d", id, rec.Code, http.StatusNotFound)
		}
	}

	if got := store.GuildCount(); got != 0 {
		t.Errorf("GuildCount = %d after probing unknown guilds, want 0", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("probing unknown guilds flushed the policy store to disk")
	}
}

func TestGuildPolicyEndpointReturnsExisting(t *testing.T) {
	s, store, _ := newTestServer(t)

	if _, err := store.Get("g1"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/guilds/g1/policy", nil)
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); !strings.Contains(body, `"guildId":"g1"`) {
		t.Errorf("body = %s, want the g1 policy", body)
	}
}
