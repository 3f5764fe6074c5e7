package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"botscope/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	got []Review
	err error
}

func (r *recordingSubmitter) SubmitReview(ctx context.Context, review Review) error {
	if r.err != nil {
		return r.err
	}
	r.got = append(r.got, review)
	return nil
}

func completeForm() Form {
	f := NewForm()
	f.BotName = " @songgift_bot "
	f.Link = "https://t.me/songgift_bot"
	f.Body = "Made a birthday song in ten minutes."
	return f
}

func TestNewFormDefaults(t *testing.T) {
	f := NewForm()
	assert.Equal(t, DefaultStars, f.Rating)
	assert.True(t, f.Agreed)
	assert.False(t, f.CanSubmit())
}

func TestFormGate(t *testing.T) {
	assert.True(t, completeForm().CanSubmit())

	cases := map[string]func(*Form){
		"no name":     func(f *Form) { f.BotName = "" },
		"blank link":  func(f *Form) { f.Link = "   " },
		"no body":     func(f *Form) { f.Body = "" },
		"not agreed":  func(f *Form) { f.Agreed = false },
		"zero rating": func(f *Form) { f.Rating = 0 },
		"six rating":  func(f *Form) { f.Rating = 6 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := completeForm()
			mutate(&f)
			assert.False(t, f.CanSubmit())
		})
	}
}

func TestSetRatingClamps(t *testing.T) {
	f := NewForm()
	f.SetRating(0)
	assert.Equal(t, 1, f.Rating)
	f.SetRating(9)
	assert.Equal(t, 5, f.Rating)
	f.SetRating(3)
	assert.Equal(t, 3, f.Rating)
}

func TestServiceSubmit(t *testing.T) {
	rec := &recordingSubmitter{}
	svc := NewService(rec, time.UTC)
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }

	review, err := svc.Submit(context.Background(), completeForm())
	require.NoError(t, err)
	assert.Len(t, review.ID, 24)
	assert.Equal(t, "@songgift_bot", review.BotName)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), review.SubmittedAt)
	require.Len(t, rec.got, 1)
	assert.Equal(t, review, rec.got[0])
}

func TestServiceSubmitIncomplete(t *testing.T) {
	rec := &recordingSubmitter{}
	svc := NewService(rec, nil)

	_, err := svc.Submit(context.Background(), NewForm())
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Empty(t, rec.got)
}

func TestServiceSubmitWrapsDeliveryError(t *testing.T) {
	boom := errors.New("smtp down")
	svc := NewService(&recordingSubmitter{err: boom}, nil)

	_, err := svc.Submit(context.Background(), completeForm())
	assert.ErrorIs(t, err, boom)
}

func TestNoopSubmitterHasNoEffect(t *testing.T) {
	svc := NewService(nil, nil)
	review, err := svc.Submit(context.Background(), completeForm())
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
}

func newTestHandler(sub Submitter) *Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(NewService(sub, time.UTC), validation.New(), log)
}

func postReview(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestHandlerSubmitAccepted(t *testing.T) {
	sub := &recordingSubmitter{}
	h := newTestHandler(sub)

	rec := postReview(h, `{"bot_name":"SongGift","link":"https://t.me/songgift_bot","body":"Lovely","rating":5,"agree":true}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp struct {
		Status string `json:"status"`
		Review Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp.Status)
	assert.Equal(t, "SongGift", resp.Review.BotName)
	assert.Len(t, sub.got, 1)
}

func TestHandlerSubmitValidation(t *testing.T) {
	h := newTestHandler(&recordingSubmitter{})

	rec := postReview(h, `{"bot_name":"SongGift","link":"not a link","body":"x","rating":7,"agree":false}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation error", resp.Error)
	assert.Equal(t, "botlink", resp.Details["Link"])
	assert.Equal(t, "lte", resp.Details["Rating"])
	assert.Equal(t, "required", resp.Details["Agree"])
}

func TestHandlerSubmitInvalidJSON(t *testing.T) {
	rec := postReview(newTestHandler(nil), `{"bot_name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid json")
}

func TestHandlerSubmitDeliveryFailure(t *testing.T) {
	h := newTestHandler(&recordingSubmitter{err: errors.New("down")})
	rec := postReview(h, `{"bot_name":"SongGift","link":"@songgift_bot","body":"Lovely","rating":3,"agree":true}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
