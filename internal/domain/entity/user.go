// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// UserProfile is the identity record for a person using the app, customer or
// feriante. It is created at registration, replaced at login/logout and only
// otherwise mutated by saving a scanned vendor.
type UserProfile struct {
	ID             string // Unique identifier, "u-" prefixed.
	Name           string // Display name.
	LastName       string
	Email          string
	Role           Role   // Exactly one of cliente or vendedor.
	DNI            string // National id, required at registration.
	Phone          string
	VendorID       string   // Set iff Role is vendedor; references the controlled stall.
	SavedVendorIDs []string // Favorited stall ids, unique, in scan order.
}

// IsVendor reports whether this profile controls a stall.
func (u *UserProfile) IsVendor() bool {
	return u.Role == RoleVendedor && u.VendorID != ""
}

// HasSaved reports whether the vendor id is already in the saved set.
func (u *UserProfile) HasSaved(vendorID string) bool {
	return slices.Contains(u.SavedVendorIDs, vendorID)
}

// SaveVendor appends the vendor id to the saved set, preserving scan order.
// Saving an already-saved id is a no-op; it reports whether the set changed.
func (u *UserProfile) SaveVendor(vendorID string) bool {
	if u.HasSaved(vendorID) {
		return false
	}
	u.SavedVendorIDs = append(u.SavedVendorIDs, vendorID)

	return true
}
