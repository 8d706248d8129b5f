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

func newIntakeContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func contactBody(message string) string {
	return `{"name":"Dana","email":"dana@example.com","service":"web-development","budget":"500-2000","message":"` + message + `"}`
}

func freelancerBody(bio string) string {
	return `{"name":"Dana","email":"dana@example.com","role":"Backend Engineer","skills":"Go, Firestore","portfolioUrl":"https://dana.example.com","hourlyRate":"45","experience":"3-5","bio":"` + bio + `"}`
}

func TestSubmitContactMessageTooShort(t *testing.T) {
	h := NewIntakeHandler(usecase.NewIntakeUseCase(nil, "team@example.com"))

	// 19 characters, one below the minimum.
	c, rec := newIntakeContext(t, contactBody(strings.Repeat("a", 19)))

	if assert.NoError(t, h.SubmitContact(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "message")
	}
}

func TestSubmitContactWithoutMailer(t *testing.T) {
	h := NewIntakeHandler(usecase.NewIntakeUseCase(nil, "team@example.com"))

	// 20 characters passes validation; the unconfigured mailer rejects it.
	c, rec := newIntakeContext(t, contactBody(strings.Repeat("a", 20)))

	if assert.NoError(t, h.SubmitContact(c)) {
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	}
}

func TestSubmitContactInvalidEmail(t *testing.T) {
	h := NewIntakeHandler(usecase.NewIntakeUseCase(nil, "team@example.com"))

	body := `{"name":"Dana","email":"not-an-email","service":"other","budget":"not-sure","message":"` + strings.Repeat("a", 30) + `"}`
	c, rec := newIntakeContext(t, body)

	if assert.NoError(t, h.SubmitContact(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestSubmitFreelancerApplicationWithoutMailer(t *testing.T) {
	h := NewIntakeHandler(usecase.NewIntakeUseCase(nil, "team@example.com"))

	c, rec := newIntakeContext(t, freelancerBody(strings.Repeat("b", 50)))

	if assert.NoError(t, h.SubmitFreelancerApplication(c)) {
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	}
}

func TestSubmitContactMalformedJSON(t *testing.T) {
	h := NewIntakeHandler(usecase.NewIntakeUseCase(nil, "team@example.com"))

	c, rec := newIntakeContext(t, `{"name": "Dana",`)

	if assert.NoError(t, h.SubmitContact(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
	}
}

func TestSubmitContactUnknownService(t *testing.T) {
	h := NewIntakeHandler(usecase.NewIntakeUseCase(nil, "team@example.com"))

	body := `{"name":"Dana","email":"dana@example.com","service":"plumbing","budget":"not-sure","message":"` + strings.Repeat("a", 30) + `"}`
	c, rec := newIntakeContext(t, body)

	if assert.NoError(t, h.SubmitContact(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "service")
	}
}

func TestSubmitFreelancerApplicationBioTooShort(t *testing.T) {
	h := NewIntakeHandler(usecase.NewIntakeUseCase(nil, "team@example.com"))

	// 49 characters, one below the minimum.
	c, rec := newIntakeContext(t, freelancerBody(strings.Repeat("b", 49)))

	if assert.NoError(t, h.SubmitFreelancerApplication(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "bio")
	}
}

func TestSubmitFreelancerApplicationUnknownExperience(t *testing.T) {
	h := NewIntakeHandler(usecase.NewIntakeUseCase(nil, "team@example.com"))

	body := strings.Replace(freelancerBody(strings.Repeat("b", 60)), `"experience":"3-5"`, `"experience":"decades"`, 1)
	c, rec := newIntakeContext(t, body)

	if assert.NoError(t, h.SubmitFreelancerApplication(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestSubmitFreelancerApplicationMissingFields(t *testing.T) {
	h := NewIntakeHandler(usecase.NewIntakeUseCase(nil, "team@example.com"))

	c, rec := newIntakeContext(t, `{"name":"Dana"}`)

	if assert.NoError(t, h.SubmitFreelancerApplication(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
