package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/handlers"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type OwnerMiddlewareTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *OwnerMiddlewareTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestOwnerMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(OwnerMiddlewareTestSuite))
}

func (s *OwnerMiddlewareTestSuite) run(ownerHeader string) (*httptest.ResponseRecorder, string, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budget", nil)
	if ownerHeader != "" {
		req.Header.Set(OwnerIDHeader, ownerHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	called := false
	handler := RequireOwner()(func(c echo.Context) error {
		called = true
		seen = GetOwnerID(c)
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return rec, seen, called
}

func (s *OwnerMiddlewareTestSuite) TestRequireOwner_SetsOwner() {
	owner := gofakeit.Username()

	rec, seen, called := s.run(owner)

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(owner, seen)
}

func (s *OwnerMiddlewareTestSuite) TestRequireOwner_TrimsWhitespace() {
	_, seen, _ := s.run("  alice  ")
	s.Equal("alice", seen)
}

func (s *OwnerMiddlewareTestSuite) TestRequireOwner_Missing() {
	rec, _, called := s.run("")

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "OWNER_001")
}

func (s *OwnerMiddlewareTestSuite) TestRequireOwner_Invalid() {
	rec, _, called := s.run("alice; DROP TABLE")

	s.False(called)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "OWNER_002")
}

func (s *OwnerMiddlewareTestSuite) TestGetOwnerID_UsesHandlerKey() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetOwnerID(c))

	c.Set(handlers.OwnerIDContextKey, "bob")
	s.Equal("bob", GetOwnerID(c))
}
