package service

import (
	"fmt"
	"net/url"
)

// WhatsAppLink builds a wa.me inquiry link for the configured business
// number.
func WhatsAppLink(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// ProductInquiryMessage is the prefilled text for a product inquiry.
func ProductInquiryMessage(productName, productID string) string {
	return fmt.Sprintf("Hello SHEWEDS, I am interested in the %s (ID: %s). Can you please provide more details?", productName, productID)
}
