package delivery

import "medassist/internal/repository"

func isValidDeliveryID(id string) bool {
	return repository.IsValidObjectID(id)
}

const otpLength = 6

func isValidOTP(otp string) bool {
	if len(otp) != otpLength {
		return false
	}
	for _, char := range otp {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
