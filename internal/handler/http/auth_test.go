package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/HaqueArif/shine-on-server/internal/domain"
	handler "github.com/HaqueArif/shine-on-server/internal/handler/http"
	"github.com/HaqueArif/shine-on-server/internal/repository"
	"github.com/HaqueArif/shine-on-server/internal/repository/mocks"
	"github.com/HaqueArif/shine-on-server/internal/service"
)

func newAuthRouter(t *testing.T, mockUserRepo *mocks.UserRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService, err := service.NewAuthService(mockUserRepo, "test-secret", time.Hour)
	require.NoError(t, err)
	authHandler := handler.NewAuthHandler(authService)

	router := gin.New()
	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)
	return router
}

func TestRegisterEndpoint_Success(t *testing.T) {
	// Arrange
	mockUserRepo := new(mocks.UserRepository)
	mockUserRepo.On("FindByEmail", mock.Anything, "new@example.com").
		Return(nil, repository.ErrUserNotFound).Once()
	mockUserRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(nil).Once()
	router := newAuthRouter(t, mockUserRepo)

	body := bytes.NewBufferString(`{"name":"New","email":"new@example.com","password":"pass123"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "User registered successfully", resp["message"])
	mockUserRepo.AssertExpectations(t)
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	existing := &domain.User{Name: "Old", Email: "dup@example.com"}
	mockUserRepo.On("FindByEmail", mock.Anything, "dup@example.com").
		Return(existing, nil).Once()
	router := newAuthRouter(t, mockUserRepo)

	body := bytes.NewBufferString(`{"name":"Dup","email":"dup@example.com","password":"pass123"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "User already exists", resp["message"])
	mockUserRepo.AssertExpectations(t)
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	router := newAuthRouter(t, mockUserRepo)

	body := bytes.NewBufferString(`{"email":"only@example.com"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUserRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestLoginEndpoint_Success(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	userInDb := &domain.User{Name: "User", Email: "user@example.com", Password: string(hashed)}
	mockUserRepo.On("FindByEmail", mock.Anything, "user@example.com").
		Return(userInDb, nil).Once()
	router := newAuthRouter(t, mockUserRepo)

	body := bytes.NewBufferString(`{"email":"user@example.com","password":"pass123"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Login successful", resp["message"])
	assert.NotEmpty(t, resp["token"])
	mockUserRepo.AssertExpectations(t)
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	// Both failure causes produce the same 401 and the same message.
	mockUserRepo := new(mocks.UserRepository)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	userInDb := &domain.User{Email: "known@example.com", Password: string(hashed)}
	mockUserRepo.On("FindByEmail", mock.Anything, "known@example.com").
		Return(userInDb, nil).Once()
	mockUserRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound).Once()
	router := newAuthRouter(t, mockUserRepo)

	for _, payload := range []string{
		`{"email":"known@example.com","password":"wrong"}`,
		`{"email":"ghost@example.com","password":"whatever"}`,
	} {
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid email or password", resp["message"])
	}
	mockUserRepo.AssertExpectations(t)
}
