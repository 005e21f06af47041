package submission

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormspreePostsJSON(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/f/abc123", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "minimal, modern", body["designPreferences"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"next":"https://formspree.io/thanks"}`))
	}))
	t.Cleanup(srv.Close)

	client := NewFormspree("abc123", WithEndpoint(srv.URL+"/f/"), WithHTTPClient(srv.Client()))
	result, err := client.Submit(context.Background(), map[string]string{"designPreferences": "minimal, modern"})
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, "https://formspree.io/thanks", result.Next)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFormspreeRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":[{"field":"email","code":"TYPE_EMAIL","message":"should be an email"}]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewFormspree("abc123", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
	result, err := client.Submit(context.Background(), map[string]string{"email": "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRejected))
	assert.False(t, result.OK)
	assert.Equal(t, http.StatusUnprocessableEntity, result.StatusCode)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "email: should be an email", result.Summary())
}

func TestFormspreeServerErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := NewFormspree("abc123", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
	result, err := client.Submit(context.Background(), nil)
	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "status 502", result.Summary())
}

func TestFormspreeMissingFormID(t *testing.T) {
	client := NewFormspree("  ")
	_, err := client.Submit(context.Background(), map[string]string{})
	assert.ErrorIs(t, err, ErrMissingFormID)
}

func TestFormspreeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewFormspree("abc123", WithEndpoint(url))
	_, err := client.Submit(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRejected))
}

func TestFormspreeHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := NewFormspree("abc123", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
	_, err := client.Submit(ctx, map[string]string{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormspreeURL(t *testing.T) {
	assert.Equal(t, "https://formspree.io/f/mzzdklon", NewFormspree("mzzdklon").URL())
}

func TestFormspreeNotOKIsRejected(t *testing.T) {
	cases := map[string]string{
		"ok false":   `{"ok":false}`,
		"non json":   `<html>captcha</html>`,
		"empty":      ``,
		"ok missing": `{"next":"https://formspree.io/thanks"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			t.Cleanup(srv.Close)

			client := NewFormspree("abc123", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
			result, err := client.Submit(context.Background(), map[string]string{"email": "a@b.co"})
			require.ErrorIs(t, err, ErrRejected)
			assert.False(t, result.OK)
			assert.Equal(t, http.StatusOK, result.StatusCode)
		})
	}
}
