package utils

import "crimedge/models"

// CanEnroll decides whether a member may take on one more enrollment.
// FREE members are capped at models.FreeCourseLimit active enrollments;
// BASIC and PREMIUM members are never rejected by count. The check runs
// only at enrollment time, so a downgrade to FREE never trims an existing
// over-limit enrollment list.
func CanEnroll(tier string, activeEnrollments int64) bool {
	if tier == models.TierFree && activeEnrollments >= models.FreeCourseLimit {
		return false
	}
	return true
}
