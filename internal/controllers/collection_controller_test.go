package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
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

func setupCollectionControllerWithMocks() (*controllers.CollectionController, *mocks.MockCollectionRepository, *mocks.MockRecipeRepository) {
	mockCollectionRepo := new(mocks.MockCollectionRepository)
	mockRecipeRepo := new(mocks.MockRecipeRepository)
	controller := controllers.NewCollectionController(mockCollectionRepo, mockRecipeRepo)
	return controller, mockCollectionRepo, mockRecipeRepo
}

func TestCreateCollection(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockCollectionRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful creation",
			requestBody: map[string]interface{}{"name": "Weeknight dinners"},
			setupMock: func(m *mocks.MockCollectionRepository) {
				m.On("Create", mock.AnythingOfType("*models.RecipeCollection")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Collection created successfully",
		},
		{
			name:           "missing name",
			requestBody:    map[string]interface{}{},
			setupMock:      func(m *mocks.MockCollectionRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:        "repository error",
			requestBody: map[string]interface{}{"name": "Weeknight dinners"},
			setupMock: func(m *mocks.MockCollectionRepository) {
				m.On("Create", mock.AnythingOfType("*models.RecipeCollection")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create collection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockCollectionRepo, _ := setupCollectionControllerWithMocks()
			tt.setupMock(mockCollectionRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/collections", controller.CreateCollection)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/collections", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockCollectionRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteCollection(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		collectionID   string
		setupMock      func(*mocks.MockCollectionRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:         "owner can delete",
			userID:       1,
			collectionID: "1",
			setupMock: func(m *mocks.MockCollectionRepository) {
				collection := &models.RecipeCollection{ID: 1, Name: "Weeknight dinners", UserID: 1}
				m.On("FindByID", uint(1)).Return(collection, nil)
				m.On("Delete", collection).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Collection deleted successfully",
		},
		{
			name:         "non-owner is rejected and nothing is deleted",
			userID:       2,
			collectionID: "1",
			setupMock: func(m *mocks.MockCollectionRepository) {
				collection := &models.RecipeCollection{ID: 1, Name: "Weeknight dinners", UserID: 1}
				m.On("FindByID", uint(1)).Return(collection, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Not the collection owner",
		},
		{
			name:         "collection not found",
			userID:       1,
			collectionID: "999",
			setupMock: func(m *mocks.MockCollectionRepository) {
				m.On("FindByID", uint(999)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Collection not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockCollectionRepo, _ := setupCollectionControllerWithMocks()
			tt.setupMock(mockCollectionRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.DELETE("/collections/:id", controller.DeleteCollection)

			req := httptest.NewRequest("DELETE", "/collections/"+tt.collectionID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			if tt.expectedStatus != http.StatusOK {
				mockCollectionRepo.AssertNotCalled(t, "Delete")
			}

			mockCollectionRepo.AssertExpectations(t)
		})
	}
}

func TestAddRecipeToCollection(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		path           string
		setupMock      func(*mocks.MockCollectionRepository, *mocks.MockRecipeRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "owner adds a recipe",
			userID: 1,
			path:   "/collections/1/recipes/5",
			setupMock: func(col *mocks.MockCollectionRepository, rec *mocks.MockRecipeRepository) {
				collection := &models.RecipeCollection{ID: 1, UserID: 1}
				recipe := &models.Recipe{ID: 5, Title: "Shakshuka"}
				col.On("FindByID", uint(1)).Return(collection, nil)
				rec.On("FindByID", uint(5)).Return(recipe, nil)
				col.On("AddRecipe", collection, recipe).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Recipe added to collection",
		},
		{
			name:   "re-adding an existing member still succeeds",
			userID: 1,
			path:   "/collections/1/recipes/5",
			setupMock: func(col *mocks.MockCollectionRepository, rec *mocks.MockRecipeRepository) {
				recipe := &models.Recipe{ID: 5, Title: "Shakshuka"}
				collection := &models.RecipeCollection{ID: 1, UserID: 1, Recipes: []models.Recipe{*recipe}}
				col.On("FindByID", uint(1)).Return(collection, nil)
				rec.On("FindByID", uint(5)).Return(recipe, nil)
				col.On("AddRecipe", collection, recipe).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Recipe added to collection",
		},
		{
			name:   "non-owner cannot change membership",
			userID: 2,
			path:   "/collections/1/recipes/5",
			setupMock: func(col *mocks.MockCollectionRepository, rec *mocks.MockRecipeRepository) {
				collection := &models.RecipeCollection{ID: 1, UserID: 1}
				col.On("FindByID", uint(1)).Return(collection, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Not the collection owner",
		},
		{
			name:   "collection not found",
			userID: 1,
			path:   "/collections/999/recipes/5",
			setupMock: func(col *mocks.MockCollectionRepository, rec *mocks.MockRecipeRepository) {
				col.On("FindByID", uint(999)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Collection not found",
		},
		{
			name:   "recipe not found",
			userID: 1,
			path:   "/collections/1/recipes/999",
			setupMock: func(col *mocks.MockCollectionRepository, rec *mocks.MockRecipeRepository) {
				collection := &models.RecipeCollection{ID: 1, UserID: 1}
				col.On("FindByID", uint(1)).Return(collection, nil)
				rec.On("FindByID", uint(999)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Recipe not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockCollectionRepo, mockRecipeRepo := setupCollectionControllerWithMocks()
			tt.setupMock(mockCollectionRepo, mockRecipeRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.POST("/collections/:id/recipes/:recipeID", controller.AddRecipe)

			req := httptest.NewRequest("POST", tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockCollectionRepo.AssertExpectations(t)
			mockRecipeRepo.AssertExpectations(t)
		})
	}
}

func TestRemoveRecipeFromCollection(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		setupMock      func(*mocks.MockCollectionRepository, *mocks.MockRecipeRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "owner removes a recipe",
			userID: 1,
			setupMock: func(col *mocks.MockCollectionRepository, rec *mocks.MockRecipeRepository) {
				recipe := &models.Recipe{ID: 5}
				collection := &models.RecipeCollection{ID: 1, UserID: 1, Recipes: []models.Recipe{*recipe}}
				col.On("FindByID", uint(1)).Return(collection, nil)
				rec.On("FindByID", uint(5)).Return(recipe, nil)
				col.On("RemoveRecipe", collection, recipe).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Recipe removed from collection",
		},
		{
			name:   "removing an absent member still succeeds",
			userID: 1,
			setupMock: func(col *mocks.MockCollectionRepository, rec *mocks.MockRecipeRepository) {
				recipe := &models.Recipe{ID: 5}
				collection := &models.RecipeCollection{ID: 1, UserID: 1}
				col.On("FindByID", uint(1)).Return(collection, nil)
				rec.On("FindByID", uint(5)).Return(recipe, nil)
				col.On("RemoveRecipe", collection, recipe).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Recipe removed from collection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockCollectionRepo, mockRecipeRepo := setupCollectionControllerWithMocks()
			tt.setupMock(mockCollectionRepo, mockRecipeRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.DELETE("/collections/:id/recipes/:recipeID", controller.RemoveRecipe)

			req := httptest.NewRequest("DELETE", "/collections/1/recipes/5", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockCollectionRepo.AssertExpectations(t)
			mockRecipeRepo.AssertExpectations(t)
		})
	}
}

func TestGetCollection(t *testing.T) {
	controller, mockCollectionRepo, _ := setupCollectionControllerWithMocks()
	collection := &models.RecipeCollection{ID: 1, Name: "Weeknight dinners", UserID: 1}
	mockCollectionRepo.On("FindByID", uint(1)).Return(collection, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(2))
	router.GET("/collections/:id", controller.GetCollection)

	// any authenticated user can view a collection
	req := httptest.NewRequest("GET", "/collections/1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Collection retrieved successfully", response["message"])

	mockCollectionRepo.AssertExpectations(t)
}

func TestListMyCollections(t *testing.T) {
	controller, mockCollectionRepo, _ := setupCollectionControllerWithMocks()
	collections := []models.RecipeCollection{
		{ID: 1, Name: "Weeknight dinners", UserID: 1},
		{ID: 2, Name: "Brunch ideas", UserID: 1},
	}
	mockCollectionRepo.On("FindAllByUserID", uint(1)).Return(collections, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/collections", controller.ListMyCollections)

	req := httptest.NewRequest("GET", "/collections", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	mockCollectionRepo.AssertExpectations(t)
}
