package announcementController

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"crimedge/config"
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"

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

func seedViewer(t *testing.T, db *gorm.DB, role, tier string) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:           "Viewer",
		Email:          fmt.Sprintf("%s-%s@example.com", role, tier),
		Role:           role,
		MembershipTier: tier,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func seedAnnouncements(t *testing.T, db *gorm.DB, authorID uint) {
	t.Helper()

	courseID := uint(7)
	rows := []models.Announcement{
		{AuthorID: authorID, Title: "Welcome", Body: "b", Audience: models.AudienceAll},
		{AuthorID: authorID, Title: "Free tips", Body: "b", Audience: models.TierFree},
		{AuthorID: authorID, Title: "Premium drill", Body: "b", Audience: models.TierPremium},
		{AuthorID: authorID + 1, Title: "Course notice", Body: "b", Audience: models.TierBasic, CourseID: &courseID},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func fetchAnnouncements(t *testing.T, app *fiber.App, token, query string) map[string]interface{} {
	t.Helper()

	req := httptest.NewRequest("GET", "/announcement"+query, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Data
}

func titlesOf(data interface{}) []string {
	items, _ := data.([]interface{})
	titles := make([]string, 0, len(items))
	for _, it := range items {
		m := it.(map[string]interface{})
		titles = append(titles, m["title"].(string))
	}
	return titles
}

func newAnnouncementApp() *fiber.App {
	app := fiber.New()
	app.Get("/announcement", middleware.JWTMiddleware, GetAnnouncements)
	return app
}

func TestGetAnnouncementsMemberFilter(t *testing.T) {
	db := setupTestDB(t)
	app := newAnnouncementApp()
	seedAnnouncements(t, db, 100)

	t.Run("free member", func(t *testing.T) {
		_, token := seedViewer(t, db, models.RoleUser, models.TierFree)
		data := fetchAnnouncements(t, app, token, "")
		assert.ElementsMatch(t, []string{"Welcome", "Free tips"}, titlesOf(data["announcements"]))
	})

	t.Run("premium member", func(t *testing.T) {
		_, token := seedViewer(t, db, models.RoleUser, models.TierPremium)
		data := fetchAnnouncements(t, app, token, "")
		assert.ElementsMatch(t, []string{"Welcome", "Premium drill"}, titlesOf(data["announcements"]))
	})

	t.Run("course scope wins over tier", func(t *testing.T) {
		user := models.User{Name: "Scoped", Email: "scoped@example.com", Role: models.RoleUser, MembershipTier: models.TierFree}
		require.NoError(t, db.Create(&user).Error)
		token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
		require.NoError(t, err)

		data := fetchAnnouncements(t, app, token, "?courseId=7")
		assert.ElementsMatch(t, []string{"Course notice"}, titlesOf(data["announcements"]))
	})
}

func TestGetAnnouncementsInstructorPartition(t *testing.T) {
	db := setupTestDB(t)
	app := newAnnouncementApp()

	instructor, token := seedViewer(t, db, models.RoleInstructor, models.TierFree)
	seedAnnouncements(t, db, instructor.ID)

	data := fetchAnnouncements(t, app, token, "")
	assert.Len(t, titlesOf(data["mine"]), 3)
	assert.ElementsMatch(t, []string{"Course notice"}, titlesOf(data["others"]))
}

func TestGetAnnouncementsAdminUnfiltered(t *testing.T) {
	db := setupTestDB(t)
	app := newAnnouncementApp()
	seedAnnouncements(t, db, 100)

	_, token := seedViewer(t, db, models.RoleAdmin, models.TierFree)
	data := fetchAnnouncements(t, app, token, "")
	assert.Len(t, titlesOf(data["announcements"]), 4)
}
