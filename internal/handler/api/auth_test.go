//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"tripdesk/internal/handler/api"
	reqdto "tripdesk/internal/handler/dto/request"
	resdto "tripdesk/internal/handler/dto/response"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/pkg/jwt"
	"tripdesk/internal/usecase/commands"
	"tripdesk/tests/common/httptest"
	commandsmock "tripdesk/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/api/auth/login", s.handler.Login)
	s.router.GET("/api/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /api/auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("staff_email", "staff@example.com")
			c.Set("staff_role", jwt.RoleStaff)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"
	body := reqdto.LoginRequest{Email: "staff@example.com", Password: "supersecret"}

	s.Run("success: returns the issued token", func() {
		expiresAt := time.Date(2026, 7, 2, 12, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().
			Login(gomock.Any(), body.Email, body.Password).
			Return(&commands.LoginResult{
				Token:     "signed-token",
				ExpiresAt: expiresAt,
				Email:     body.Email,
				Role:      jwt.RoleStaff,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-token", response.AccessToken)
		s.Equal(body.Email, response.Email)
		s.Equal(jwt.RoleStaff, response.Role)
		s.True(expiresAt.Equal(response.ExpiresAt))
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), body.Email, body.Password).
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name string
			body reqdto.LoginRequest
		}{
			{name: "missing email", body: reqdto.LoginRequest{Password: "supersecret"}},
			{name: "invalid email", body: reqdto.LoginRequest{Email: "not-an-email", Password: "supersecret"}},
			{name: "short password", body: reqdto.LoginRequest{Email: "staff@example.com", Password: "short"}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/api/auth/me"

	s.Run("success: returns identity set by the middleware", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("staff@example.com", response["email"])
		s.Equal(jwt.RoleStaff, response["role"])
	})
}
