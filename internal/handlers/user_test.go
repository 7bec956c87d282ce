package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"school-cms-api/internal/models"
	"school-cms-api/internal/repository"
	"school-cms-api/internal/services"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *UserHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *UserHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{})
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	suite.handler = NewUserHandler(services.NewUserService(userRepo))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/users", suite.handler.ListUsers)
	suite.router.GET("/users/:id", suite.handler.GetUser)
	suite.router.POST("/users", suite.handler.CreateUser)
	suite.router.PUT("/users/:id", suite.handler.UpdateUser)
	suite.router.DELETE("/users/:id", suite.handler.DeleteUser)
}

// TearDownTest runs after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *UserHandlerTestSuite) createTestUser(email string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.MinCost)
	suite.Require().NoError(err)

	user := &models.User{
		Username:     "someone",
		Email:        email,
		PasswordHash: string(hash),
	}
	suite.db.Create(user)
	return user
}

func (suite *UserHandlerTestSuite) do(method, url string, payload any) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *UserHandlerTestSuite) TestCreateUser() {
	w := suite.do("POST", "/users", gin.H{
		"username": "new",
		"email":    "new@mail.com",
		"password": "secret123",
		"is_admin": true,
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var stored models.User
	suite.Require().NoError(suite.db.Where("email = ?", "new@mail.com").First(&stored).Error)
	assert.True(suite.T(), stored.IsAdmin)
	// Stored as a hash, and the hash is never serialized.
	assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	assert.NotContains(suite.T(), w.Body.String(), "secret123")
	assert.NotContains(suite.T(), w.Body.String(), stored.PasswordHash)
}

func (suite *UserHandlerTestSuite) TestCreateUser_InvalidEmail() {
	w := suite.do("POST", "/users", gin.H{
		"username": "new",
		"email":    "not-an-email",
		"password": "secret123",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateUser_BlankPasswordKeepsHash() {
	user := suite.createTestUser("someone@mail.com")

	w := suite.do("PUT", fmt.Sprintf("/users/%d", user.ID), gin.H{
		"username": "renamed",
		"email":    "someone@mail.com",
		"password": "   ",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.User
	suite.Require().NoError(suite.db.First(&stored, user.ID).Error)
	assert.Equal(suite.T(), "renamed", stored.Username)
	assert.Equal(suite.T(), user.PasswordHash, stored.PasswordHash)
}

func (suite *UserHandlerTestSuite) TestUpdateUser_NewPasswordRehashes() {
	user := suite.createTestUser("someone@mail.com")

	w := suite.do("PUT", fmt.Sprintf("/users/%d", user.ID), gin.H{
		"username": "someone",
		"email":    "someone@mail.com",
		"password": "changed456",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.User
	suite.Require().NoError(suite.db.First(&stored, user.ID).Error)
	assert.NotEqual(suite.T(), user.PasswordHash, stored.PasswordHash)
	assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("changed456")))
}

func (suite *UserHandlerTestSuite) TestUpdateUser_NotFound() {
	w := suite.do("PUT", "/users/999", gin.H{
		"username": "ghost",
		"email":    "ghost@mail.com",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetUser() {
	user := suite.createTestUser("someone@mail.com")

	w := suite.do("GET", fmt.Sprintf("/users/%d", user.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "someone@mail.com")
}

func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	w := suite.do("GET", "/users/999", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.createTestUser("a@mail.com")
	suite.createTestUser("b@mail.com")

	w := suite.do("GET", "/users", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var users []models.User
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(suite.T(), users, 2)
}

func (suite *UserHandlerTestSuite) TestDeleteUser() {
	user := suite.createTestUser("gone@mail.com")

	w := suite.do("DELETE", fmt.Sprintf("/users/%d", user.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *UserHandlerTestSuite) TestDeleteUser_NotFound() {
	w := suite.do("DELETE", "/users/999", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
