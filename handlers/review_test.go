package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artisanhub/models"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReviewService records the rating it was called with and applies the
// range check.
type stubReviewService struct {
	gotRating int
	called    bool
}

func (s *stubReviewService) Submit(ctx context.Context, studentID, bookingID, artisanID string, rating int, reviewText string) (*models.Review, error) {
	s.called = true
	s.gotRating = rating
	if rating < 1 || rating > 5 {
		return nil, utils.NewServiceError(utils.CodeInvalidArgument, "rating must be between 1 and 5")
	}
	return &models.Review{Rating: rating}, nil
}

func (s *stubReviewService) ListByArtisan(artisanID string) ([]models.Review, error) {
	return nil, nil
}

func (s *stubReviewService) ListByStudent(studentID string) ([]models.Review, error) {
	return nil, nil
}

func newReviewRouter(svc *stubReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/reviews", func(c *gin.Context) {
		c.Set("actor", models.Actor{Role: models.RoleStudent, ID: "student-1"})
	}, NewReviewHandler(svc).Submit)
	return r
}

func postReview(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitZeroRatingReachesService(t *testing.T) {
	svc := &stubReviewService{}
	r := newReviewRouter(svc)

	w := postReview(t, r, `{"artisanId":"artisan-1","bookingId":"b1","rating":0,"reviewText":"meh"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, svc.called, "zero rating should pass the binder and reach the service")
	assert.Equal(t, 0, svc.gotRating)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, utils.CodeInvalidArgument, body["code"])
	assert.Equal(t, "rating must be between 1 and 5", body["error"])
}

func TestSubmitValidRating(t *testing.T) {
	svc := &stubReviewService{}
	r := newReviewRouter(svc)

	w := postReview(t, r, `{"artisanId":"artisan-1","bookingId":"b1","rating":4,"reviewText":"solid"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 4, svc.gotRating)
}

func TestSubmitMissingFieldsRejectedAtBinder(t *testing.T) {
	svc := &stubReviewService{}
	r := newReviewRouter(svc)

	w := postReview(t, r, `{"rating":4}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.called)
}
