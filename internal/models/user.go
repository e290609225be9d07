// Package models defines the data types persisted by schoolinv: organization
// accounts, catalog entries and inventory records. The JSON field names match
// the snapshot format the original web version kept in browser storage, so a
// migrated snapshot hydrates cleanly.
package models

import "strings"

// User is one organization account.
//
// Password is stored and compared in plaintext on purpose: the tool is a
// single-machine local registry and makes no authentication-security
// guarantees. IsAdmin is fixed at registration time from the email.
type User struct {
	Email                string `json:"email"`
	FullName             string `json:"fullName"`
	Organization         string `json:"organization"`
	JobTitle             string `json:"jobTitle"`
	Password             string `json:"password,omitempty"`
	IsAdmin              bool   `json:"isAdmin"`
	IsVerified           bool   `json:"isVerified"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

// NewUser builds an unverified account from registration form input.
// Admin rights are derived from the email containing "admin".
func NewUser(email, fullName, organization, jobTitle, password string) User {
	return User{
		Email:                email,
		FullName:             fullName,
		Organization:         organization,
		JobTitle:             jobTitle,
		Password:             password,
		IsAdmin:              strings.Contains(email, "admin"),
		IsVerified:           false,
		NotificationsEnabled: true,
	}
}
