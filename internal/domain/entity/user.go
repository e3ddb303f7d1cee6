// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record in the system. The account type is fixed at
// registration; exactly one of the role-specific profiles is set, matching it.
type User struct {
	ID              uuid.UUID        // The unique identifier for the user.
	Username        string           // The unique login identifier.
	PasswordHash    string           // The bcrypt hash of the user's password.
	Name            string           // The user's first name.
	Surname         string           // The user's last name.
	Type            UserType         // MERCHANT or CUSTOMER, immutable after creation.
	MerchantProfile *MerchantProfile // Set iff Type is MERCHANT.
	CustomerProfile *CustomerProfile // Set iff Type is CUSTOMER.
	CreatedAt       time.Time        // Timestamp of when this account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this account.
}

// MerchantProfile holds data specific to the merchant role.
type MerchantProfile struct {
	UserID      uuid.UUID // Foreign key that links this profile to a core User entity.
	CompanyName string    // The merchant's registered company name.
	UpdatedAt   time.Time
}

// CustomerProfile holds data specific to the customer role.
type CustomerProfile struct {
	UserID    uuid.UUID // Foreign key that links this profile to a core User entity.
	Balance   float64   // The customer's account balance, zero at registration.
	UpdatedAt time.Time
}

// IsMerchant reports whether the account carries a merchant profile.
func (u *User) IsMerchant() bool {
	return u.Type == UserTypeMerchant && u.MerchantProfile != nil
}

// IsCustomer reports whether the account carries a customer profile.
func (u *User) IsCustomer() bool {
	return u.Type == UserTypeCustomer && u.CustomerProfile != nil
}
