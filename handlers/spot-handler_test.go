package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotshare/models"
)

func TestGetAllSpots(t *testing.T) {
	app, db := newTestApp(t)

	owner := createUser(t, db, "Anna", "Owner", "anna@example.com")
	reviewerA := createUser(t, db, "Ben", "Rater", "ben@example.com")
	reviewerB := createUser(t, db, "Cleo", "Rater", "cleo@example.com")

	bare := createSpot(t, db, owner.ID, "Bare")

	rated := createSpot(t, db, owner.ID, "Rated")
	addReview(t, db, rated.ID, reviewerA.ID, 3, "fine")
	addReview(t, db, rated.ID, reviewerB.ID, 4, "good")
	addImage(t, db, rated.ID, "https://img.test/plain.jpg", false)
	addImage(t, db, rated.ID, "https://img.test/first.jpg", true)
	addImage(t, db, rated.ID, "https://img.test/second.jpg", true)

	status, body := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/spots", nil, ""))
	require.Equal(t, http.StatusOK, status)

	bareItem := findSpotByName(t, body, "Bare")
	assert.EqualValues(t, 0, bareItem["avgRating"])
	assert.Equal(t, "no preview url", bareItem["previewImage"])
	assert.EqualValues(t, bare.ID, bareItem["id"])

	ratedItem := findSpotByName(t, body, "Rated")
	assert.EqualValues(t, 3.5, ratedItem["avgRating"])
	// with several preview-flagged images the last one wins
	assert.Equal(t, "https://img.test/second.jpg", ratedItem["previewImage"])

	// raw collections are stripped from the listing
	assert.NotContains(t, ratedItem, "SpotImages")
	assert.NotContains(t, ratedItem, "Reviews")
}

func TestGetCurrentUserSpots(t *testing.T) {
	app, db := newTestApp(t)

	owner := createUser(t, db, "Anna", "Owner", "anna@example.com")
	other := createUser(t, db, "Omar", "Other", "omar@example.com")
	createSpot(t, db, owner.ID, "Mine")
	createSpot(t, db, other.ID, "Theirs")

	status, body := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/spots/current", nil, ""))
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authentication required", body["message"])

	status, body = doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/spots/current", nil, bearerToken(t, owner)))
	require.Equal(t, http.StatusOK, status)

	spots := body["Spots"].([]interface{})
	require.Len(t, spots, 1)
	assert.Equal(t, "Mine", spots[0].(map[string]interface{})["name"])
}

func TestGetSpotDetail(t *testing.T) {
	app, db := newTestApp(t)

	owner := createUser(t, db, "Anna", "Owner", "anna@example.com")
	reviewerA := createUser(t, db, "Ben", "Rater", "ben@example.com")
	reviewerB := createUser(t, db, "Cleo", "Rater", "cleo@example.com")

	spot := createSpot(t, db, owner.ID, "Rated")
	addReview(t, db, spot.ID, reviewerA.ID, 4, "good")
	addReview(t, db, spot.ID, reviewerB.ID, 5, "great")
	addImage(t, db, spot.ID, "https://img.test/a.jpg", true)

	status, body := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/spots/1", nil, ""))
	require.Equal(t, http.StatusOK, status)

	assert.EqualValues(t, 2, body["numReviews"])
	assert.EqualValues(t, 4.5, body["avgStarRating"])

	images := body["SpotImages"].([]interface{})
	require.Len(t, images, 1)
	image := images[0].(map[string]interface{})
	assert.Equal(t, "https://img.test/a.jpg", image["url"])
	assert.Equal(t, true, image["preview"])

	ownerBody := body["Owner"].(map[string]interface{})
	assert.EqualValues(t, owner.ID, ownerBody["id"])
	assert.Equal(t, "Anna", ownerBody["firstName"])
	assert.Equal(t, "Owner", ownerBody["lastName"])
}

func TestGetSpotDetail_NoReviews(t *testing.T) {
	app, db := newTestApp(t)

	owner := createUser(t, db, "Anna", "Owner", "anna@example.com")
	createSpot(t, db, owner.ID, "Quiet")

	status, body := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/spots/1", nil, ""))
	require.Equal(t, http.StatusOK, status)

	assert.EqualValues(t, 0, body["numReviews"])
	// no reviews leaves the DB-side average null, not zero
	assert.Nil(t, body["avgStarRating"])
}

func TestGetSpotDetail_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/spots/999", nil, ""))
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Spot couldn't be found", body["message"])
}

func TestCreateSpot(t *testing.T) {
	app, db := newTestApp(t)

	user := createUser(t, db, "Anna", "Owner", "anna@example.com")

	status, body := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/spots", validSpotBody(), bearerToken(t, user)))
	require.Equal(t, http.StatusCreated, status)

	assert.NotZero(t, body["id"])
	assert.EqualValues(t, user.ID, body["ownerId"])
	assert.Equal(t, "Cabin", body["name"])
	assert.EqualValues(t, 50, body["price"])

	var count int64
	require.NoError(t, db.Model(&models.Spot{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateSpot_Unauthenticated(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/spots", validSpotBody(), ""))
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authentication required", body["message"])
}

func TestCreateSpot_ValidationBeforeAuth(t *testing.T) {
	app, _ := newTestApp(t)

	payload := validSpotBody()
	delete(payload, "address")
	payload["lat"] = 95

	// no token on purpose: validation still answers first
	status, body := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/spots", payload, ""))
	require.Equal(t, http.StatusUnprocessableEntity, status)

	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "Street address is required", errs["address"])
	assert.Equal(t, "Latitude must be within -90 and 90", errs["lat"])
}

func TestUpdateSpot(t *testing.T) {
	app, db := newTestApp(t)

	owner := createUser(t, db, "Anna", "Owner", "anna@example.com")
	stranger := createUser(t, db, "Omar", "Other", "omar@example.com")
	spot := createSpot(t, db, owner.ID, "Old Name")

	payload := validSpotBody()
	payload["name"] = "New Name"

	status, body := doRequest(t, app, jsonRequest(t, http.MethodPut, "/api/spots/1", payload, ""))
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authentication required", body["message"])

	status, body = doRequest(t, app, jsonRequest(t, http.MethodPut, "/api/spots/999", payload, bearerToken(t, owner)))
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Spot couldn't be found", body["message"])

	status, body = doRequest(t, app, jsonRequest(t, http.MethodPut, "/api/spots/1", payload, bearerToken(t, stranger)))
	require.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden", body["message"])

	status, body = doRequest(t, app, jsonRequest(t, http.MethodPut, "/api/spots/1", payload, bearerToken(t, owner)))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "New Name", body["name"])

	var updated models.Spot
	require.NoError(t, db.First(&updated, spot.ID).Error)
	assert.Equal(t, "New Name", updated.Name)
}

func TestDeleteSpot(t *testing.T) {
	app, db := newTestApp(t)

	owner := createUser(t, db, "Anna", "Owner", "anna@example.com")
	stranger := createUser(t, db, "Omar", "Other", "omar@example.com")
	spot := createSpot(t, db, owner.ID, "Doomed")
	addImage(t, db, spot.ID, "https://img.test/a.jpg", true)
	addReview(t, db, spot.ID, stranger.ID, 4, "good")

	status, body := doRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/spots/1", nil, ""))
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authentication required", body["message"])

	status, body = doRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/spots/1", nil, bearerToken(t, stranger)))
	require.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden", body["message"])

	status, body = doRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/spots/1", nil, bearerToken(t, owner)))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Successfully deleted", body["message"])

	// deleting again is a 404, not a crash
	status, body = doRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/spots/1", nil, bearerToken(t, owner)))
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Spot couldn't be found", body["message"])

	// images and reviews cascade with the spot
	var images, reviews int64
	require.NoError(t, db.Model(&models.SpotImage{}).Count(&images).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	assert.EqualValues(t, 0, images)
	assert.EqualValues(t, 0, reviews)
}
