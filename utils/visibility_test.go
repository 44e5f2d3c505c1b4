package utils

import (
	"testing"

	"crimedge/models"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func announcementFixtures() []models.Announcement {
	return []models.Announcement{
		{AuthorID: 1, Title: "Welcome", Audience: models.AudienceAll},
		{AuthorID: 1, Title: "Free tips", Audience: models.TierFree},
		{AuthorID: 2, Title: "Basic perks", Audience: models.TierBasic},
		{AuthorID: 2, Title: "Premium drill", Audience: models.TierPremium},
		{AuthorID: 2, Title: "Course notice", Audience: models.AudienceAll, CourseID: uintPtr(7)},
		{AuthorID: 3, Title: "Other course", Audience: models.TierPremium, CourseID: uintPtr(9)},
	}
}

func TestFilterAnnouncementsForMember(t *testing.T) {
	list := announcementFixtures()

	t.Run("free member sees ALL and FREE", func(t *testing.T) {
		visible := FilterAnnouncementsForMember(list, models.TierFree, nil)
		titles := make([]string, 0, len(visible))
		for _, a := range visible {
			titles = append(titles, a.Title)
		}
		assert.ElementsMatch(t, []string{"Welcome", "Free tips", "Course notice"}, titles)
	})

	t.Run("premium member does not see basic-only", func(t *testing.T) {
		visible := FilterAnnouncementsForMember(list, models.TierPremium, nil)
		for _, a := range visible {
			assert.NotEqual(t, "Basic perks", a.Title)
		}
	})

	t.Run("course scope overrides the tier rule", func(t *testing.T) {
		visible := FilterAnnouncementsForMember(list, models.TierFree, uintPtr(9))
		assert.Len(t, visible, 1)
		assert.Equal(t, "Other course", visible[0].Title)
	})

	t.Run("course scope with no match is empty", func(t *testing.T) {
		visible := FilterAnnouncementsForMember(list, models.TierPremium, uintPtr(42))
		assert.Empty(t, visible)
	})
}

func TestPartitionAnnouncementsForInstructor(t *testing.T) {
	list := announcementFixtures()

	mine, others := PartitionAnnouncementsForInstructor(list, 2)
	assert.Len(t, mine, 3)
	assert.Len(t, others, 3)
	for _, a := range mine {
		assert.Equal(t, uint(2), a.AuthorID)
	}
	for _, a := range others {
		assert.NotEqual(t, uint(2), a.AuthorID)
	}
}
