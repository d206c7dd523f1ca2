package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipehub/internal/controllers"
	"recipehub/internal/mocks"
	"recipehub/internal/models"
	"recipehub/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupAuthControllerWithMock() (*controllers.AuthController, *mocks.MockUserRepository) {
	mockRepo := new(mocks.MockUserRepository)
	controller := controllers.NewAuthController(mockRepo)
	return controller, mockRepo
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"username": "chef_jane",
				"email":    "jane@example.com",
				"password": "supersecret1",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByUsername", "chef_jane").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "User registered successfully",
		},
		{
			name: "duplicate username",
			requestBody: map[string]interface{}{
				"username": "chef_jane",
				"email":    "other@example.com",
				"password": "supersecret1",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				existing := &models.User{ID: 1, Username: "chef_jane"}
				m.On("FindByUsername", "chef_jane").Return(existing, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Username already taken",
		},
		{
			name: "duplicate email",
			requestBody: map[string]interface{}{
				"username": "other_jane",
				"email":    "jane@example.com",
				"password": "supersecret1",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				existing := &models.User{ID: 1, Email: "jane@example.com"}
				m.On("FindByUsername", "other_jane").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", "jane@example.com").Return(existing, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Email already registered",
		},
		{
			name: "password too short",
			requestBody: map[string]interface{}{
				"username": "chef_jane",
				"email":    "jane@example.com",
				"password": "short",
			},
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "invalid email",
			requestBody: map[string]interface{}{
				"username": "chef_jane",
				"email":    "not-an-email",
				"password": "supersecret1",
			},
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupAuthControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/auth/register", controller.Register)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			if tt.expectedStatus == http.StatusCreated {
				data := response["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("supersecret1")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"username": "chef_jane",
				"password": "supersecret1",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				user := &models.User{ID: 1, Username: "chef_jane", Email: "jane@example.com", Password: hash}
				m.On("FindByUsername", "chef_jane").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User logged in successfully",
		},
		{
			name: "wrong password",
			requestBody: map[string]interface{}{
				"username": "chef_jane",
				"password": "wrongpassword",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				user := &models.User{ID: 1, Username: "chef_jane", Password: hash}
				m.On("FindByUsername", "chef_jane").Return(user, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Incorrect password",
		},
		{
			name: "unknown username",
			requestBody: map[string]interface{}{
				"username": "nobody",
				"password": "supersecret1",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByUsername", "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
		{
			name: "missing credentials",
			requestBody: map[string]interface{}{
				"username": "chef_jane",
			},
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupAuthControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/auth/login", controller.Login)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}
