package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"botscope/internal/reviews"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReview() reviews.Review {
	return reviews.Review{
		ID:          "r1",
		BotName:     "SongGift",
		Link:        "https://t.me/songgift_bot",
		Body:        "Great <b>songs</b>",
		Rating:      5,
		SubmittedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestNewBrevoClientRequiresCredentials(t *testing.T) {
	assert.Nil(t, NewBrevoClient("", "from@example.com", "", "mod@example.com", false))
	assert.Nil(t, NewBrevoClient("key", "", "", "mod@example.com", false))
	assert.Nil(t, NewBrevoClient("key", "from@example.com", "", " ", false))

	c := NewBrevoClient("key", "from@example.com", "", "mod@example.com", false)
	require.NotNil(t, c)
	assert.Equal(t, "from@example.com", c.senderName)
}

func TestSubmitReviewSendsEmail(t *testing.T) {
	var got brevoSendRequest
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<abc@brevo>"}`))
	}))
	defer srv.Close()

	c := NewBrevoClient("secret", "from@example.com", "BotScope", "mod@example.com", true)
	c.endpoint = srv.URL

	require.NoError(t, c.SubmitReview(context.Background(), sampleReview()))
	assert.Equal(t, "secret", apiKey)
	require.Len(t, got.To, 1)
	assert.Equal(t, "mod@example.com", got.To[0].Email)
	assert.Equal(t, "New review: SongGift (5/5)", got.Subject)
	assert.Equal(t, "drop", got.Headers["X-Sib-Sandbox"])
	assert.Contains(t, got.HtmlContent, "Great &lt;b&gt;songs&lt;/b&gt;")
	assert.Contains(t, got.HtmlContent, "2026-03-01 10:30 UTC")
}

func TestSubmitReviewReportsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Key not found"}`))
	}))
	defer srv.Close()

	c := NewBrevoClient("bad", "from@example.com", "BotScope", "mod@example.com", false)
	c.endpoint = srv.URL

	err := c.SubmitReview(context.Background(), sampleReview())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}

func TestSubmitReviewOnNilClient(t *testing.T) {
	var c *BrevoClient
	assert.Error(t, c.SubmitReview(context.Background(), sampleReview()))
}
