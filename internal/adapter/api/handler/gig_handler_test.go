package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"orbitmarket/internal/adapter/api"
)

func newGigContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(http.MethodPost, "/v1/gigs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set("uid", "seller-1")
	return c, rec
}

func gigBody(title string) string {
	tierDescription := strings.Repeat("p", 20)
	return `{
		"title": "` + title + `",
		"description": "` + strings.Repeat("d", 60) + `",
		"category": "design",
		"tags": ["branding"],
		"pricing": {
			"basic": {"title": "Basic", "description": "` + tierDescription + `", "price": 50, "delivery_days": 3, "revisions": 1},
			"standard": {"title": "Standard", "description": "` + tierDescription + `", "price": 150, "delivery_days": 7, "revisions": 2},
			"premium": {"title": "Premium", "description": "` + tierDescription + `", "price": 500, "delivery_days": 14, "revisions": 5}
		}
	}`
}

func TestCreateGigTitleTooShort(t *testing.T) {
	// Validation rejects the payload before the use case is reached.
	h := NewGigHandler(nil)

	// 9 characters, one below the minimum.
	c, rec := newGigContext(t, gigBody(strings.Repeat("t", 9)))

	if assert.NoError(t, h.CreateGig(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "title")
	}
}

func TestCreateGigUnknownCategory(t *testing.T) {
	h := NewGigHandler(nil)

	body := strings.Replace(gigBody(strings.Repeat("t", 20)), `"category": "design"`, `"category": "plumbing"`, 1)
	c, rec := newGigContext(t, body)

	if assert.NoError(t, h.CreateGig(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestCreateGigTierPriceTooLow(t *testing.T) {
	h := NewGigHandler(nil)

	body := strings.Replace(gigBody(strings.Repeat("t", 20)), `"price": 50,`, `"price": 4,`, 1)
	c, rec := newGigContext(t, body)

	if assert.NoError(t, h.CreateGig(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestCreateGigTierDescriptionTooShort(t *testing.T) {
	h := NewGigHandler(nil)

	// 9 characters, one below the tier minimum.
	body := strings.Replace(gigBody(strings.Repeat("t", 20)), strings.Repeat("p", 20), strings.Repeat("p", 9), 1)
	c, rec := newGigContext(t, body)

	if assert.NoError(t, h.CreateGig(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestCreateGigTierTitleTooLong(t *testing.T) {
	h := NewGigHandler(nil)

	body := strings.Replace(gigBody(strings.Repeat("t", 20)), `"title": "Basic"`, `"title": "`+strings.Repeat("b", 51)+`"`, 1)
	c, rec := newGigContext(t, body)

	if assert.NoError(t, h.CreateGig(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestCreateGigWithoutTags(t *testing.T) {
	h := NewGigHandler(nil)

	body := strings.Replace(gigBody(strings.Repeat("t", 20)), `"tags": ["branding"],`, ``, 1)
	c, rec := newGigContext(t, body)

	if assert.NoError(t, h.CreateGig(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
