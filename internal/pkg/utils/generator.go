package utils

import (
	"fmt"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateReceiptID builds the receipt reference sent along with a gateway
// order so the payment can be traced back to its consultation.
func GenerateReceiptID(consultationID string) string {
	return fmt.Sprintf("rcpt_%s", consultationID)
}
