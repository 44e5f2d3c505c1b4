package utils

import "crimedge/models"

// FilterAnnouncementsForMember returns the subset of announcements visible
// to a member. With no course scope, a record is visible when its audience
// tag equals the member's tier or is ALL. When a course scope is supplied,
// visibility narrows to an exact course-id match and the tier rule is not
// applied at all; the two filters are mutually exclusive.
func FilterAnnouncementsForMember(list []models.Announcement, tier string, courseID *uint) []models.Announcement {
	visible := make([]models.Announcement, 0, len(list))
	for _, a := range list {
		if courseID != nil {
			if a.CourseID != nil && *a.CourseID == *courseID {
				visible = append(visible, a)
			}
			continue
		}
		if a.Audience == models.AudienceAll || a.Audience == tier {
			visible = append(visible, a)
		}
	}
	return visible
}

// PartitionAnnouncementsForInstructor splits the full list into the
// instructor's own announcements and everyone else's. Instructors always
// see their own records regardless of audience tag.
func PartitionAnnouncementsForInstructor(list []models.Announcement, instructorID uint) (mine, others []models.Announcement) {
	mine = make([]models.Announcement, 0, len(list))
	others = make([]models.Announcement, 0, len(list))
	for _, a := range list {
		if a.AuthorID == instructorID {
			mine = append(mine, a)
		} else {
			others = append(others, a)
		}
	}
	return mine, others
}
