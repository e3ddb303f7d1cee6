// Package entity contains the core business objects of the project.
package entity

// UserType represents the kind of account a user registered as.
type UserType string

const (
	// UserTypeMerchant indicates a merchant account that manages categories, products and photos.
	UserTypeMerchant UserType = "MERCHANT"
	// UserTypeCustomer indicates a customer account that uses the cart, wishlist and orders.
	UserTypeCustomer UserType = "CUSTOMER"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeMerchant, UserTypeCustomer:
		return true
	default:
		return false
	}
}
