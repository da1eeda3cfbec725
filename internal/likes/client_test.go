package likes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendLikes_Success(t *testing.T) {
	var gotPath, gotUID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUID = r.URL.Query().Get("uid")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"PlayerNickname": "Player1",
			"LikesBefore": 10,
			"LikesAfter": 110,
			"LikesGivenByAPI": 100,
			"SuccessfulRequests": 100,
			"TotalTokensUsed": 100,
			"UID": "123456789",
			"status": 1
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	result, raw, err := c.SendLikes(context.Background(), "123456789")
	require.NoError(t, err)

	assert.Equal(t, "/like", gotPath)
	assert.Equal(t, "123456789", gotUID)
	assert.Equal(t, "Player1", result.PlayerNickname)
	assert.Equal(t, 10, result.LikesBefore)
	assert.Equal(t, 110, result.LikesAfter)
	assert.Equal(t, 100, result.LikesGiven)
	assert.Equal(t, 1, result.Status)
	assert.Contains(t, string(raw), "Player1")
}

func TestSendLikes_EscapesUID(t *testing.T) {
	var gotUID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUID = r.URL.Query().Get("uid")
		w.Write([]byte(`{"status":1}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, _, err := c.SendLikes(context.Background(), "a b&c=d")
	require.NoError(t, err)
	assert.Equal(t, "a b&c=d", gotUID)
}

func TestSendLikes_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, _, err := c.SendLikes(context.Background(), "123")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestSendLikes_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, _, err := c.SendLikes(context.Background(), "123")
	assert.Error(t, err)
}

func TestSendLikes_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	_, _, err := c.SendLikes(context.Background(), "123")
	assert.Error(t, err)
}
