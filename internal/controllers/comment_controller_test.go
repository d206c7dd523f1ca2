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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupCommentControllerWithMocks() (*controllers.CommentController, *mocks.MockCommentRepository, *mocks.MockRecipeRepository, *mocks.MockUserRepository, *mocks.MockNotifier) {
	mockCommentRepo := new(mocks.MockCommentRepository)
	mockRecipeRepo := new(mocks.MockRecipeRepository)
	mockUserRepo := new(mocks.MockUserRepository)
	mockNotifier := new(mocks.MockNotifier)
	controller := controllers.NewCommentController(mockCommentRepo, mockRecipeRepo, mockUserRepo, mockNotifier)
	return controller, mockCommentRepo, mockRecipeRepo, mockUserRepo, mockNotifier
}

func TestCreateComment(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		recipeID       string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockCommentRepository, *mocks.MockRecipeRepository, *mocks.MockUserRepository, *mocks.MockNotifier)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "comment notifies the recipe author",
			userID:      2,
			recipeID:    "1",
			requestBody: map[string]interface{}{"text": "Tried this last night, fantastic."},
			setupMock: func(com *mocks.MockCommentRepository, rec *mocks.MockRecipeRepository, u *mocks.MockUserRepository, n *mocks.MockNotifier) {
				recipe := &models.Recipe{ID: 1, Title: "Shakshuka", AuthorID: 1}
				rec.On("FindByID", uint(1)).Return(recipe, nil)
				com.On("Create", mock.AnythingOfType("*models.Comment")).Return(nil)
				u.On("FindByID", uint(2)).Return(&models.User{ID: 2, Username: "sam"}, nil)
				senderID := uint(2)
				n.On("Notify", uint(1), &senderID, "sam commented on your recipe Shakshuka").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Comment created successfully",
		},
		{
			name:           "empty text rejected",
			userID:         2,
			recipeID:       "1",
			requestBody:    map[string]interface{}{},
			setupMock:      func(com *mocks.MockCommentRepository, rec *mocks.MockRecipeRepository, u *mocks.MockUserRepository, n *mocks.MockNotifier) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:        "recipe not found",
			userID:      2,
			recipeID:    "999",
			requestBody: map[string]interface{}{"text": "Where did it go?"},
			setupMock: func(com *mocks.MockCommentRepository, rec *mocks.MockRecipeRepository, u *mocks.MockUserRepository, n *mocks.MockNotifier) {
				rec.On("FindByID", uint(999)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Recipe not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockCommentRepo, mockRecipeRepo, mockUserRepo, mockNotifier := setupCommentControllerWithMocks()
			tt.setupMock(mockCommentRepo, mockRecipeRepo, mockUserRepo, mockNotifier)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.POST("/recipes/:id/comments", controller.CreateComment)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/recipes/"+tt.recipeID+"/comments", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockCommentRepo.AssertExpectations(t)
			mockRecipeRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
			mockNotifier.AssertExpectations(t)
		})
	}
}

func TestUpdateComment(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		commentID      string
		setupMock      func(*mocks.MockCommentRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "author can edit",
			userID:    2,
			commentID: "3",
			setupMock: func(m *mocks.MockCommentRepository) {
				comment := &models.Comment{ID: 3, RecipeID: 1, AuthorID: 2, Text: "Old text"}
				m.On("FindByID", uint(3)).Return(comment, nil)
				m.On("Update", mock.AnythingOfType("*models.Comment")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Comment updated successfully",
		},
		{
			name:      "non-author is rejected",
			userID:    3,
			commentID: "3",
			setupMock: func(m *mocks.MockCommentRepository) {
				comment := &models.Comment{ID: 3, RecipeID: 1, AuthorID: 2, Text: "Old text"}
				m.On("FindByID", uint(3)).Return(comment, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Not the comment author",
		},
		{
			name:      "comment not found",
			userID:    2,
			commentID: "999",
			setupMock: func(m *mocks.MockCommentRepository) {
				m.On("FindByID", uint(999)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Comment not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockCommentRepo, _, _, _ := setupCommentControllerWithMocks()
			tt.setupMock(mockCommentRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.PUT("/comments/:id", controller.UpdateComment)

			body, _ := json.Marshal(map[string]interface{}{"text": "New text"})
			req := httptest.NewRequest("PUT", "/comments/"+tt.commentID, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockCommentRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteComment(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		commentID      string
		setupMock      func(*mocks.MockCommentRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "author can delete",
			userID:    2,
			commentID: "3",
			setupMock: func(m *mocks.MockCommentRepository) {
				comment := &models.Comment{ID: 3, RecipeID: 1, AuthorID: 2}
				m.On("FindByID", uint(3)).Return(comment, nil)
				m.On("Delete", uint(3)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Comment deleted successfully",
		},
		{
			name:      "non-author is rejected",
			userID:    3,
			commentID: "3",
			setupMock: func(m *mocks.MockCommentRepository) {
				comment := &models.Comment{ID: 3, RecipeID: 1, AuthorID: 2}
				m.On("FindByID", uint(3)).Return(comment, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Not the comment author",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockCommentRepo, _, _, _ := setupCommentControllerWithMocks()
			tt.setupMock(mockCommentRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.DELETE("/comments/:id", controller.DeleteComment)

			req := httptest.NewRequest("DELETE", "/comments/"+tt.commentID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockCommentRepo.AssertExpectations(t)
		})
	}
}
