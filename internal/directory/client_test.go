package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserClient_Get_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/u1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1","name":"Alice","email":"alice@example.com"}`))
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)

	user, err := c.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Alice", user.Name)
}

func TestUserClient_Get_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)

	_, err := c.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NotErrorIs(t, err, domain.ErrDirectoryUnavailable)
}

func TestSpaceClient_Get_ParsesOperatingHours(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/spaces/s1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"s1","name":"Open Space","capacity":12,"opening_time":"09:00:00","closing_time":"17:00:00","active":true}`))
	}))
	defer srv.Close()

	c := NewSpaceClient(srv.URL, time.Second)

	space, err := c.Get(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, "Open Space", space.Name)
	assert.Equal(t, "09:00", space.OpeningTime.String())
	assert.Equal(t, "17:00", space.ClosingTime.String())
}

func TestSpaceClient_Get_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewSpaceClient(srv.URL, time.Second)

	_, err := c.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpaceNotFound)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"id":"u1","name":"Alice"}`))
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)

	user, err := c.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewUserClient(srv.URL, 100*time.Millisecond)

	_, err := c.Get(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDirectoryUnavailable)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}

func TestClient_DoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)

	_, err := c.Get(context.Background(), "missing")

	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, int32(1), calls.Load())
}
