package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"spotshare/auth"
	handler "spotshare/handlers"
	"spotshare/models"
	"spotshare/router"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// unique shared-cache name per test so pooled connections see one database
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Spot{},
		&models.SpotImage{},
		&models.Review{},
		&models.ReviewImage{},
	))

	return db
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret-key")

	db := newTestDB(t)
	auth.SetupAuthService(db)

	app := fiber.New()
	router.SetupRoutes(app, handler.NewHandlers(db))

	return app, db
}

func createUser(t *testing.T, db *gorm.DB, firstName, lastName, email string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		HashedPassword: hash,
	}
	require.NoError(t, db.Create(&user).Error)

	return &user
}

func bearerToken(t *testing.T, user *models.User) string {
	t.Helper()

	tokenStr, err := auth.IssueToken(user.ID, user.FirstName+" "+user.LastName, user.Email)
	require.NoError(t, err)

	return "Bearer " + tokenStr
}

func createSpot(t *testing.T, db *gorm.DB, ownerID uint, name string) *models.Spot {
	t.Helper()

	spot := models.Spot{
		OwnerID:     ownerID,
		Address:     "1 Main St",
		City:        "Springfield",
		State:       "IL",
		Country:     "USA",
		Lat:         41.7,
		Lng:         -87.9,
		Name:        name,
		Description: "A fine place",
		Price:       120,
	}
	require.NoError(t, db.Create(&spot).Error)

	return &spot
}

func addImage(t *testing.T, db *gorm.DB, spotID uint, url string, preview bool) *models.SpotImage {
	t.Helper()

	image := models.SpotImage{SpotID: spotID, URL: url, Preview: preview}
	require.NoError(t, db.Create(&image).Error)

	return &image
}

func addReview(t *testing.T, db *gorm.DB, spotID, userID uint, stars int, text string) *models.Review {
	t.Helper()

	review := models.Review{SpotID: spotID, UserID: userID, Stars: stars, Review: text}
	require.NoError(t, db.Create(&review).Error)

	return &review
}

func jsonRequest(t *testing.T, method, path string, body interface{}, authHeader string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}

	return resp.StatusCode, parsed
}

func validSpotBody() map[string]interface{} {
	return map[string]interface{}{
		"address":     "1 Main St",
		"city":        "X",
		"state":       "Y",
		"country":     "Z",
		"lat":         10,
		"lng":         20,
		"name":        "Cabin",
		"description": "Nice",
		"price":       50,
	}
}

func findSpotByName(t *testing.T, body map[string]interface{}, name string) map[string]interface{} {
	t.Helper()

	spots, ok := body["Spots"].([]interface{})
	require.True(t, ok, "Spots key missing: %v", body)

	for _, item := range spots {
		spot := item.(map[string]interface{})
		if spot["name"] == name {
			return spot
		}
	}

	t.Fatalf("spot %q not found in listing", name)
	return nil
}
