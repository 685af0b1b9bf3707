package container

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistica/internal/alert"
	"logistica/internal/config"
	"logistica/internal/screens"
	"logistica/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContainer(t *testing.T, backend, url string) *Container {
	t.Helper()

	cfg := config.Config{
		APIURL:         url,
		Timeout:        2 * time.Second,
		DataDir:        t.TempDir(),
		SessionBackend: backend,
	}
	c, err := NewAppContainer(cfg, zap.NewNop(), &alert.Recorder{}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestTokenIsAttachedAndRejectedSessionCleared(t *testing.T) {
	for _, backend := range []string{config.SessionBackendFile, config.SessionBackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			var gotAuth string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer ts.Close()

			c := newTestContainer(t, backend, ts.URL)
			ctx := context.Background()
			require.NoError(t, c.Store.Save(ctx, models.Session{Name: "Ana", Profile: "admin", Token: "abc"}))
			assert.Equal(t, screens.RouteHome, c.App.InitialRoute(ctx))

			_, err := c.Users.Load(ctx)
			require.Error(t, err)

			assert.Equal(t, "Bearer abc", gotAuth)
			_, ok := c.Store.Load(ctx)
			assert.False(t, ok)
			assert.Equal(t, screens.RouteLogin, c.App.InitialRoute(ctx))
		})
	}
}

func TestFailedLoginKeepsStoredSession(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			var gotAuth string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(status)
			}))
			defer ts.Close()

			c := newTestContainer(t, config.SessionBackendFile, ts.URL)
			ctx := context.Background()
			ana := models.Session{Name: "Ana", Profile: "admin", Token: "abc"}
			require.NoError(t, c.Store.Save(ctx, ana))

			_, err := c.Login.Submit(ctx, "bob@example.com", "wrong")
			require.Error(t, err)

			assert.Empty(t, gotAuth)
			stored, ok := c.Store.Load(ctx)
			require.True(t, ok)
			assert.Equal(t, ana, *stored)
			assert.Equal(t, screens.RouteHome, c.App.InitialRoute(ctx))
		})
	}
}
