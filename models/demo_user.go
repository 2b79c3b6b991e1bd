package models

import "time"

const DemoUserSource = "demo_signup_modal"

// DemoUser is a lead captured by the demo signup modal.
type DemoUser struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	CompanyName      *string   `json:"companyName"`
	MarketingConsent bool      `json:"marketingConsent"`
	SignedUpAt       time.Time `json:"signedUpAt"`
	Source           string    `json:"source"`
}
