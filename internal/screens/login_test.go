package screens

import (
	"context"
	"net/http"
	"testing"

	"logistica/internal/alert"
	"logistica/internal/api"
	"logistica/internal/session"
	custom_error "logistica/pkg/errors"
	"logistica/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoginSubmit(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		mockSetup     func(*MockBackend)
		expectedRoute Route
		expectedAlert *alert.Notification
		expectSession bool
	}{
		{
			name:     "success stores session and opens home",
			email:    "ana@example.com",
			password: "secret",
			mockSetup: func(m *MockBackend) {
				m.On("Login", mock.Anything, models.LoginRequest{Email: "ana@example.com", Password: "secret"}).
					Return(&models.LoginResponse{Name: "Ana", Profile: "admin"}, &api.Response{Status: http.StatusOK}, nil).Once()
			},
			expectedRoute: RouteHome,
			expectSession: true,
		},
		{
			name:     "rejected credentials",
			email:    "ana@example.com",
			password: "wrong",
			mockSetup: func(m *MockBackend) {
				m.On("Login", mock.Anything, mock.Anything).
					Return(nil, &api.Response{Status: http.StatusUnauthorized}, custom_error.NewServerError("POST /login", 401, nil)).Once()
			},
			expectedAlert: &alert.Notification{Title: alert.TitleError, Message: msgLoginFailed},
		},
		{
			name:          "missing password",
			email:         "ana@example.com",
			mockSetup:     func(m *MockBackend) {},
			expectedAlert: &alert.Notification{Title: alert.TitleError, Message: msgMissingFields},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := new(MockBackend)
			tt.mockSetup(backend)
			store := session.NewFileStore(t.TempDir(), zap.NewNop())
			nav := &History{}
			gateway, rec := newGateway()

			c := NewLoginController(backend, store, nav, gateway, zap.NewNop())
			_, err := c.Submit(context.Background(), tt.email, tt.password)

			backend.AssertExpectations(t)
			stored, ok := store.Load(context.Background())
			assert.Equal(t, tt.expectSession, ok)

			if tt.expectSession {
				require.NoError(t, err)
				assert.Equal(t, "Ana", stored.Name)
				assert.Equal(t, "admin", stored.Profile)
				assert.Equal(t, "ana@example.com", stored.Email)

				current, _ := nav.Current()
				assert.Equal(t, tt.expectedRoute, current.Route)
				assert.Empty(t, rec.All())
				return
			}

			assert.Error(t, err)
			assert.Empty(t, nav.Visits())
			assert.Equal(t, []alert.Notification{*tt.expectedAlert}, rec.All())
		})
	}
}

func TestInitialRoute(t *testing.T) {
	store := session.NewFileStore(t.TempDir(), zap.NewNop())
	app := NewApp(store)
	ctx := context.Background()

	assert.Equal(t, RouteLogin, app.InitialRoute(ctx))

	require.NoError(t, store.Save(ctx, models.Session{Name: "Ana", Profile: "admin"}))
	assert.Equal(t, RouteHome, app.InitialRoute(ctx))
}

func TestHomeHeaderAndLogout(t *testing.T) {
	store := session.NewFileStore(t.TempDir(), zap.NewNop())
	nav := &History{}
	gateway, _ := newGateway()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, models.Session{Name: "Ana", Profile: "admin"}))

	home := NewHomeController(store, nav, gateway, zap.NewNop())
	assert.Equal(t, "Ana - admin", home.Header(ctx))
	assert.Len(t, home.Menu(), 4)

	require.NoError(t, home.Logout(ctx))

	_, ok := store.Load(ctx)
	assert.False(t, ok)
	assert.Equal(t, "", home.Header(ctx))
	current, _ := nav.Current()
	assert.Equal(t, RouteLogin, current.Route)
	assert.Equal(t, RouteLogin, NewApp(store).InitialRoute(ctx))
}
