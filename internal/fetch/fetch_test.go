package fetch_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"pycargo/internal/fetch"
)

func TestFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("__pycache__/\n*.pyc\n"))
	}))
	defer srv.Close()

	body, err := (&fetch.HTTP{}).Fetch(srv.URL)
	require.NoError(t, err)
	require.Equal(t, "__pycache__/\n*.pyc\n", string(body))
}

func TestFetchClassifiesHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := (&fetch.HTTP{}).Fetch(srv.URL)
	require.Error(t, err)

	var statusErr *fetch.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.Code)
	require.Equal(t, srv.URL, statusErr.URL)
}

func TestFetchWrapsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := (&fetch.HTTP{}).Fetch(srv.URL)
	require.Error(t, err)

	var statusErr *fetch.StatusError
	require.False(t, errors.As(err, &statusErr), "transport failures are not status errors")
}
