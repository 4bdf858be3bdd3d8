package entity

import (
	"time"
)

// RequestStatus tracks a user's application for a vendor or admin role.
type RequestStatus string

const (
	RequestNone     RequestStatus = "none"
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestNone, RequestPending, RequestAccepted, RequestRejected:
		return true
	}
	return false
}

// User documents are keyed by the identity-provider uid.
type User struct {
	ID          string `json:"id" firestore:"id"`
	UID         string `json:"uid" firestore:"uid"`
	Email       string `json:"email" firestore:"email"`
	Name        string `json:"name,omitempty" firestore:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address     string `json:"address,omitempty" firestore:"address,omitempty"`
	Photo       string `json:"photo,omitempty" firestore:"photo,omitempty"`
	Role        Role   `json:"role" firestore:"role"`

	VendorRequest     RequestStatus `json:"vendorRequest" firestore:"vendorRequest"`
	VendorRequestDate *time.Time    `json:"vendorRequestDate,omitempty" firestore:"vendorRequestDate,omitempty"`
	AdminRequest      RequestStatus `json:"adminRequest" firestore:"adminRequest"`
	AdminRequestDate  *time.Time    `json:"adminRequestDate,omitempty" firestore:"adminRequestDate,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (u *User) HasRole(r Role) bool {
	return u != nil && u.Role == r
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
