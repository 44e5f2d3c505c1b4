package controllers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"crimedge/config"
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	courseModels "crimedge/models/course"
	courseValidators "crimedge/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	return db
}

func newEnrollmentApp() *fiber.App {
	app := fiber.New()
	app.Post("/course/:courseId/enroll", middleware.JWTMiddleware, courseValidators.CourseID(), EnrollInCourse)
	return app
}

func seedUser(t *testing.T, db *gorm.DB, tier string) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:            "Test Member",
		Email:           fmt.Sprintf("member-%s@example.com", tier),
		Role:            models.RoleUser,
		MembershipTier:  tier,
		IsEmailVerified: true,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func seedActiveCourse(t *testing.T, db *gorm.DB, title string) courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:        title,
		Description:  "board exam review material",
		InstructorID: 1,
		Status:       courseModels.StatusActive,
		IsPublished:  true,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

type apiResponse struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func enroll(t *testing.T, app *fiber.App, token string, courseID uint) (int, apiResponse) {
	t.Helper()

	req := httptest.NewRequest("POST", fmt.Sprintf("/course/%d/enroll", courseID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestEnrollFreeTierLimit(t *testing.T) {
	db := setupTestDB(t)
	app := newEnrollmentApp()

	_, token := seedUser(t, db, models.TierFree)
	first := seedActiveCourse(t, db, "Criminal Law")
	second := seedActiveCourse(t, db, "Criminalistics")
	third := seedActiveCourse(t, db, "Criminal Jurisprudence")

	code, body := enroll(t, app, token, first.ID)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, body.Status)

	code, body = enroll(t, app, token, second.ID)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, body.Status)

	// third enrollment hits the cap; still a 200, flagged in the payload
	code, body = enroll(t, app, token, third.ID)
	assert.Equal(t, fiber.StatusOK, code)
	assert.False(t, body.Status)
	assert.Equal(t, true, body.Data["limitReached"])
	assert.EqualValues(t, models.FreeCourseLimit, body.Data["limit"])

	var count int64
	db.Model(&courseModels.Enrollment{}).Count(&count)
	assert.EqualValues(t, models.FreeCourseLimit, count)
}

func TestEnrollPaidTierUncapped(t *testing.T) {
	db := setupTestDB(t)
	app := newEnrollmentApp()

	_, token := seedUser(t, db, models.TierPremium)
	for i := 0; i < 4; i++ {
		course := seedActiveCourse(t, db, fmt.Sprintf("Course %d", i+1))
		code, body := enroll(t, app, token, course.ID)
		assert.Equal(t, fiber.StatusOK, code)
		assert.True(t, body.Status)
	}
}

func TestEnrollDuplicate(t *testing.T) {
	db := setupTestDB(t)
	app := newEnrollmentApp()

	_, token := seedUser(t, db, models.TierBasic)
	course := seedActiveCourse(t, db, "Law Enforcement Administration")

	code, _ := enroll(t, app, token, course.ID)
	assert.Equal(t, fiber.StatusOK, code)

	code, body := enroll(t, app, token, course.ID)
	assert.Equal(t, fiber.StatusConflict, code)
	assert.False(t, body.Status)
}

func TestEnrollUnpublishedCourse(t *testing.T) {
	db := setupTestDB(t)
	app := newEnrollmentApp()

	_, token := seedUser(t, db, models.TierFree)

	course := courseModels.Course{
		Title:        "Draft Course",
		Description:  "not yet live",
		InstructorID: 1,
		Status:       courseModels.StatusDraft,
	}
	require.NoError(t, db.Create(&course).Error)

	code, body := enroll(t, app, token, course.ID)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.False(t, body.Status)
}
