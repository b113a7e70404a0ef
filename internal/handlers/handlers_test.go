package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cortefacil/corte-facil-api/internal/config"
	"github.com/cortefacil/corte-facil-api/internal/models"
	"github.com/cortefacil/corte-facil-api/internal/routes"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.AuditLog{},
	))

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		ServerPort:  "0",
		Environment: "test",
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, zap.NewNop())

	return r, db, cfg
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newRecorder(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedUser(t *testing.T, db *gorm.DB, name, email, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleClient,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedAppointment(t *testing.T, db *gorm.DB, clientID uint, date, slot, status string) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		ClientID:   clientID,
		ClientName: "Cliente",
		BarberName: models.DefaultBarberName,
		Date:       date,
		TimeSlot:   slot,
		Service:    "Corte de cabelo",
		Status:     status,
		Price:      models.DefaultPrice,
	}
	require.NoError(t, db.Create(ap).Error)
	return ap
}
