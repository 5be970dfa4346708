package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-api/internal/constants"
	"github.com/taskhive/taskhive-api/internal/database"
	"github.com/taskhive/taskhive-api/internal/dto"
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/repository"
	"github.com/taskhive/taskhive-api/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type adminAuthTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupAdminAuthTestEnv(t *testing.T, bootstrapSecret string) adminAuthTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Admin{}))

	database.SetDB(db)

	adminService := services.NewAdminService(repository.NewAdminRepository(db), bootstrapSecret)
	handler := NewAdminAuthHandler(adminService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.SessionsMany([]string{constants.UserSessionName, constants.AdminSessionName}, store))
	r.POST("/api/admin/auth/login", handler.Login)
	r.POST("/api/admin/bootstrap", handler.Bootstrap)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return adminAuthTestEnv{db: db, router: r}
}

func (env adminAuthTestEnv) createAdmin(t *testing.T, email, password string) *models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := &models.Admin{Name: "Root", Email: email, PasswordHash: string(hash), Role: "admin"}
	require.NoError(t, env.db.Create(admin).Error)
	return admin
}

func TestAdminAuthHandler_Login(t *testing.T) {
	env := setupAdminAuthTestEnv(t, "")
	env.createAdmin(t, "root@example.com", "supersecret")

	w := postJSON(t, env.router, "/api/admin/auth/login", map[string]string{
		"email":    "root@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AdminDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "admin", response.Role)
	require.NotEmpty(t, w.Result().Cookies())
}

func TestAdminAuthHandler_Login_UserCredentialsRejected(t *testing.T) {
	// A user account must never open an admin session; the identity
	// spaces are separate tables.
	env := setupAdminAuthTestEnv(t, "")

	w := postJSON(t, env.router, "/api/admin/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthHandler_Bootstrap(t *testing.T) {
	env := setupAdminAuthTestEnv(t, "setup-secret")

	w := postJSON(t, env.router, "/api/admin/bootstrap", map[string]string{
		"name":       "Root",
		"email":      "root@example.com",
		"password":   "supersecret",
		"secret_key": "setup-secret",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Admin{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAdminAuthHandler_Bootstrap_WrongSecret(t *testing.T) {
	env := setupAdminAuthTestEnv(t, "setup-secret")

	w := postJSON(t, env.router, "/api/admin/bootstrap", map[string]string{
		"name":       "Root",
		"email":      "root@example.com",
		"password":   "supersecret",
		"secret_key": "guess",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Admin{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestAdminAuthHandler_Bootstrap_Disabled(t *testing.T) {
	env := setupAdminAuthTestEnv(t, "")

	w := postJSON(t, env.router, "/api/admin/bootstrap", map[string]string{
		"name":       "Root",
		"email":      "root@example.com",
		"password":   "supersecret",
		"secret_key": "anything",
	})

	require.Equal(t, http.StatusForbidden, w.Code)
}
