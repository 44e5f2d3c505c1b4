package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// GenerateCertificateNumber produces a unique, human-readable certificate id
func GenerateCertificateNumber() string {
	return fmt.Sprintf("CE-%s-%s", time.Now().Format("200601"), uuid.NewString()[:8])
}
