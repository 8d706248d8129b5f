package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"orbitmarket/internal/adapter/api"
	"orbitmarket/internal/usecase"
)

func newReviewContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(http.MethodPost, "/v1/reviews", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set("uid", "buyer-1")
	return c, rec
}

func reviewBody(comment string) string {
	return `{"order_id":"order-1","rating":5,"comment":"` + comment + `"}`
}

func TestCreateReviewCommentTooShort(t *testing.T) {
	// Validation rejects the payload before the use case is reached.
	h := NewReviewHandler(nil)

	// 9 characters, one below the minimum.
	c, rec := newReviewContext(t, reviewBody(strings.Repeat("c", 9)))

	if assert.NoError(t, h.CreateReview(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "comment")
	}
}

func TestCreateReviewCommentTooLong(t *testing.T) {
	h := NewReviewHandler(nil)

	c, rec := newReviewContext(t, reviewBody(strings.Repeat("c", 1001)))

	if assert.NoError(t, h.CreateReview(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "comment")
	}
}

func TestReviewCommentBounds(t *testing.T) {
	v := api.NewValidator()

	tenChars := usecase.CreateReviewInput{OrderID: "order-1", Rating: 5, Comment: strings.Repeat("c", 10)}
	assert.NoError(t, v.Validate(&tenChars))

	thousandChars := usecase.CreateReviewInput{OrderID: "order-1", Rating: 5, Comment: strings.Repeat("c", 1000)}
	assert.NoError(t, v.Validate(&thousandChars))
}
