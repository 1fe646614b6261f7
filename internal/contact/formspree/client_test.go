package formspree

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leomarzeuski/portfolio/internal/contact/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	_, err := NewClient("", 0)
	assert.ErrorIs(t, err, ErrMissingEndpoint)

	_, err = NewClient("not a url", 0)
	assert.Error(t, err)
}

func TestSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/f/abc", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Ana", r.PostForm.Get("name"))
		assert.Equal(t, "ana@example.com", r.PostForm.Get("email"))
		assert.Equal(t, "Hi there", r.PostForm.Get("message"))
		assert.Equal(t, "pt", r.PostForm.Get("locale"))
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	c, err := NewClient(server.URL+"/f/abc", 0)
	require.NoError(t, err)

	err = c.Send(context.Background(), domain.Submission{Name: "Ana", Email: "ana@example.com", Message: "Hi there", Locale: "pt"})
	assert.NoError(t, err)
}

func TestSendNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors": [{"field": "email"}]}`))
	}))
	defer server.Close()

	c, err := NewClient(server.URL, 0)
	require.NoError(t, err)

	err = c.Send(context.Background(), domain.Submission{Name: "a", Email: "b", Message: "c"})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "email")
}
