package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/services"
)

type MockAuthService struct{}

func (m *MockAuthService) Login(db *database.Database, username, password string) (string, error) {
	if username == "exampleUser" && password == "examplePass" {
		return testAuth.CreateToken(testUserID, username)
	}
	return "", services.ErrInvalidCredentials
}

func (m *MockAuthService) CreateToken(userID uuid.UUID, username string) (string, error) {
	return testAuth.CreateToken(userID, username)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*services.JWTClaims, error) {
	return testAuth.ValidateToken(tokenString)
}

func (m *MockAuthService) HashPassword(password string) (string, error) {
	return testAuth.HashPassword(password)
}

func (m *MockAuthService) ComparePasswords(hashedPassword, password string) error {
	return testAuth.ComparePasswords(hashedPassword, password)
}

func setupAuthRouter() *gin.Engine {
	router := gin.Default()
	db := &database.Database{}
	RegisterAuthRoutes(router, db, &MockAuthService{})
	return router
}

func TestLoginRoute(t *testing.T) {
	router := setupAuthRouter()

	t.Run("Missing Fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"username":"exampleUser"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Bad Credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"username":"exampleUser","password":"wrongPass"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid username or password")
	})

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"username":"exampleUser","password":"examplePass"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var body tokenResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Token)

		claims, err := testAuth.ValidateToken(body.Token)
		assert.NoError(t, err)
		assert.Equal(t, testUserID, claims.UserID)
	})
}

func TestRefreshRoute(t *testing.T) {
	router := setupAuthRouter()

	t.Run("No Token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/auth/refresh", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "POST", "/auth/refresh", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var body tokenResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		claims, err := testAuth.ValidateToken(body.Token)
		assert.NoError(t, err)
		assert.Equal(t, testUserID, claims.UserID)
		assert.Equal(t, "exampleUser", claims.Username)
	})
}
