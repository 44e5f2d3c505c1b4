package utils

import (
	"crimedge/database"
	"crimedge/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeMembershipScheduler sets up the membership expiry scheduler
func InitializeMembershipScheduler() {
	log.Println("[MEMBERSHIP-SCHEDULER] Initializing membership scheduler...")

	c := cron.New()

	// Run daily at 9 AM to process expiring and expired memberships
	c.AddFunc("0 9 * * *", func() {
		log.Println("[MEMBERSHIP-SCHEDULER] Running daily membership check...")
		ProcessExpiringMemberships()
		ExpireMemberships()
	})

	c.Start()
	log.Println("[MEMBERSHIP-SCHEDULER] Membership scheduler started - runs daily at 9 AM")
}

// ProcessExpiringMemberships sends reminder emails for memberships expiring in 2 days
func ProcessExpiringMemberships() {
	db := database.Database.Db
	now := time.Now()
	twoDaysFromNow := now.AddDate(0, 0, 2)

	var expiring []models.Membership
	if err := db.
		Where("status = ? AND reminder_sent = false AND expires_at IS NOT NULL", models.MembershipActive).
		Where("expires_at BETWEEN ? AND ?", now, twoDaysFromNow).
		Preload("Plan").
		Find(&expiring).Error; err != nil {
		log.Printf("[MEMBERSHIP-SCHEDULER] Error fetching expiring memberships: %v", err)
		return
	}

	log.Printf("[MEMBERSHIP-SCHEDULER] Found %d memberships expiring soon", len(expiring))

	for _, m := range expiring {
		var user models.User
		if err := db.Where("id = ?", m.UserID).First(&user).Error; err != nil {
			log.Printf("[MEMBERSHIP-SCHEDULER] Error fetching user %d: %v", m.UserID, err)
			continue
		}

		SendMembershipExpiryReminder(user.Email, user.Name, m.Plan.Name, m.ExpiresAt)

		m.ReminderSent = true
		if err := db.Save(&m).Error; err != nil {
			log.Printf("[MEMBERSHIP-SCHEDULER] Error marking reminder sent for membership %d: %v", m.ID, err)
		}
	}
}

// ExpireMemberships marks lapsed memberships expired and drops the user back
// to the FREE tier. Existing over-limit enrollments are left untouched; the
// Free-tier limit only applies to new enrollment attempts.
func ExpireMemberships() {
	db := database.Database.Db
	now := time.Now()

	var lapsed []models.Membership
	if err := db.
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.MembershipActive, now).
		Preload("Plan").
		Find(&lapsed).Error; err != nil {
		log.Printf("[MEMBERSHIP-SCHEDULER] Error fetching lapsed memberships: %v", err)
		return
	}

	log.Printf("[MEMBERSHIP-SCHEDULER] Expiring %d memberships", len(lapsed))

	for _, m := range lapsed {
		m.Status = models.MembershipExpired
		if err := db.Save(&m).Error; err != nil {
			log.Printf("[MEMBERSHIP-SCHEDULER] Error expiring membership %d: %v", m.ID, err)
			continue
		}

		var user models.User
		if err := db.Where("id = ?", m.UserID).First(&user).Error; err != nil {
			log.Printf("[MEMBERSHIP-SCHEDULER] Error fetching user %d: %v", m.UserID, err)
			continue
		}

		user.MembershipTier = models.TierFree
		if err := db.Save(&user).Error; err != nil {
			log.Printf("[MEMBERSHIP-SCHEDULER] Error downgrading user %d: %v", user.ID, err)
			continue
		}

		SendMembershipExpiredEmail(user.Email, user.Name, m.Plan.Name)
	}
}
