package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	custom_error "logistica/pkg/errors"
	"logistica/pkg/metadata"
	"logistica/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *observer.ObservedLogs) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	client := NewClient(Config{BaseURL: server.URL + "/", Timeout: 2 * time.Second}, zap.New(core), opts...)
	return client, logs
}

func TestDoReturnsEveryStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		logged bool
	}{
		{"ok", http.StatusOK, false},
		{"created", http.StatusCreated, false},
		{"bad request", http.StatusBadRequest, true},
		{"not found", http.StatusNotFound, true},
		{"internal error", http.StatusInternalServerError, true},
		{"gateway timeout", http.StatusGatewayTimeout, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"x"}`))
			})

			resp, err := client.Do(context.Background(), http.MethodGet, "/movements", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.Status)
			assert.JSONEq(t, `{"message":"x"}`, string(resp.Data))

			errorLogs := logs.FilterLevelExact(zapcore.ErrorLevel).Len()
			if tt.logged {
				assert.Equal(t, 1, errorLogs)
			} else {
				assert.Zero(t, errorLogs)
			}
		})
	}
}

func TestDoTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	client := NewClient(Config{BaseURL: baseURL, Timeout: time.Second}, zap.New(core))

	resp, err := client.Do(context.Background(), http.MethodGet, "/products", nil, nil)
	assert.Nil(t, resp)
	assert.True(t, custom_error.IsNetwork(err))
	assert.Equal(t, 1, logs.FilterMessage("Request failed without response").Len())
}

func TestDoSendsDefaultHeadersAndToken(t *testing.T) {
	var got http.Header
	var body string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusOK)
	}, WithTokenSource(func(context.Context) string { return "tok" }))

	_, err := client.Do(context.Background(), http.MethodPost, "/login", models.LoginRequest{Email: "a@b.c", Password: "p"}, http.Header{"X-Trace": {"1"}})
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "Bearer tok", got.Get("Authorization"))
	assert.Equal(t, "1", got.Get("X-Trace"))
	assert.JSONEq(t, `{"email":"a@b.c","password":"p"}`, body)
}

func TestDoWithoutTokenSendsNoAuthorization(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}, WithTokenSource(func(context.Context) string { return "" }))

	_, err := client.Do(context.Background(), http.MethodGet, "/products", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestUnauthorizedHandler(t *testing.T) {
	tests := []struct {
		status int
		called bool
	}{
		{http.StatusUnauthorized, true},
		{http.StatusForbidden, true},
		{http.StatusNotFound, false},
		{http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var calls []int
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}, WithTokenSource(func(context.Context) string { return "tok" }),
				WithUnauthorizedHandler(func(_ context.Context, status int) {
					calls = append(calls, status)
				}))

			resp, err := client.Do(context.Background(), http.MethodGet, "/users", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.Status)

			if tt.called {
				assert.Equal(t, []int{tt.status}, calls)
			} else {
				assert.Empty(t, calls)
			}
		})
	}
}

func TestUnauthorizedHandlerIgnoresRequestsWithoutToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		call  func(c *Client) error
	}{
		{"no session", "", func(c *Client) error {
			_, err := c.Do(context.Background(), http.MethodGet, "/users", nil, nil)
			return err
		}},
		{"login with stored session", "tok", func(c *Client) error {
			_, resp, err := c.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "wrong"})
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusUnauthorized, resp.Status)
			require.Error(t, err)
			return nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []int
			var gotAuth string
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusUnauthorized)
			}, WithTokenSource(func(context.Context) string { return tt.token }),
				WithUnauthorizedHandler(func(_ context.Context, status int) {
					calls = append(calls, status)
				}))

			require.NoError(t, tt.call(client))
			assert.Empty(t, gotAuth)
			assert.Empty(t, calls)
		})
	}
}

func TestMultipartBody(t *testing.T) {
	var (
		contentType string
		fileName    string
		fileType    string
		fileBody    string
		motorista   string
		method      string
		path        string
	)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		contentType = r.Header.Get("Content-Type")

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()

		raw, _ := io.ReadAll(file)
		fileBody = string(raw)
		fileName = header.Filename
		fileType = header.Header.Get("Content-Type")
		motorista = r.FormValue("motorista")

		w.WriteHeader(http.StatusOK)
	})

	resp, err := client.StartMovement(context.Background(), "m1", FormFile{
		FileName: "file.jpg",
		Content:  strings.NewReader("jpeg-bytes"),
	}, []Field{{Name: "motorista", Value: "João"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/movements/m1/start", path)
	assert.True(t, strings.HasPrefix(contentType, "multipart/form-data; boundary="))
	assert.Equal(t, "file.jpg", fileName)
	assert.Equal(t, ImageJPEG, fileType)
	assert.Equal(t, "jpeg-bytes", fileBody)
	assert.Equal(t, "João", motorista)
}

func TestMultipartEscapesFileName(t *testing.T) {
	var fileName string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		_, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		fileName = header.Filename
		w.WriteHeader(http.StatusOK)
	})

	resp, err := client.EndMovement(context.Background(), "m1", FormFile{
		FileName: `entrega "final".jpg`,
		Content:  strings.NewReader("jpeg-bytes"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, `entrega "final".jpg`, fileName)
}

func TestMultipartRequiresContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.EndMovement(context.Background(), "m1", FormFile{FileName: "image.jpg"}, nil)
	assert.Error(t, err)
}

func TestTimeoutAppliesToMultipart(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, zap.NewNop())

	_, err := client.EndMovement(context.Background(), "m1", FormFile{
		FileName: "image.jpg",
		Content:  strings.NewReader("x"),
	}, nil)
	assert.True(t, custom_error.IsNetwork(err))
}

func TestEndpointWrappers(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /movements":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": 42}`))
		case "GET /movements":
			_, _ = w.Write([]byte(`[{"id":"m1","status":"Em Trânsito","quantidade":3,"produto":{"nome":"Caixa","imagem":""},"origem":{"nome":"A","latitude":1,"longitude":2},"destino":{"nome":"B","latitude":3,"longitude":4}}]`))
		case "PATCH /users/u1/toggle-status":
			w.WriteHeader(http.StatusOK)
		case "POST /register":
			w.WriteHeader(http.StatusConflict)
		case "GET /branches/options":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Matriz"},{"id":"f2","name":"Filial 2"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	id, resp, err := client.CreateMovement(ctx, models.CreateMovementRequest{Quantity: "3"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, models.ID("42"), id)

	movements, _, err := client.ListMovements(ctx)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, metadata.StatusInTransit, movements[0].Status)
	assert.Equal(t, "B", movements[0].Destino.Nome)

	_, err = client.ToggleUserStatus(ctx, "u1")
	assert.NoError(t, err)

	resp, err = client.Register(ctx, models.RegisterUserRequest{Name: "x"})
	assert.True(t, custom_error.IsServer(err))
	assert.Equal(t, http.StatusConflict, resp.Status)

	branches, _, err := client.ListBranches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Branch{{ID: "1", Name: "Matriz"}, {ID: "f2", Name: "Filial 2"}}, branches)

	_, _, err = client.ListProducts(ctx)
	assert.True(t, custom_error.IsServer(err))
}

func TestCreateMovementWithoutID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	})

	_, _, err := client.CreateMovement(context.Background(), models.CreateMovementRequest{})
	assert.Error(t, err)
}
