package entity

import (
	"time"
)

type Advertisement struct {
	ID            string        `json:"id" firestore:"id"`
	Title         string        `json:"title" firestore:"title"`
	Image         string        `json:"image" firestore:"image"`
	Link          string        `json:"link,omitempty" firestore:"link,omitempty"`
	Desc          string        `json:"desc,omitempty" firestore:"desc,omitempty"`
	Status        ProductStatus `json:"status" firestore:"status"`
	RejectReason  string        `json:"rejectReason,omitempty" firestore:"rejectReason,omitempty"`
	AdminFeedback string        `json:"adminFeedback,omitempty" firestore:"adminFeedback,omitempty"`
	Validity      string        `json:"validity,omitempty" firestore:"validity,omitempty"`
	VendorUID     string        `json:"vendorUid,omitempty" firestore:"vendorUid,omitempty"`
	VendorEmail   string        `json:"vendorEmail,omitempty" firestore:"vendorEmail,omitempty"`
	CreatedAt     time.Time     `json:"createdAt" firestore:"createdAt"`
}

func (a *Advertisement) OwnedBy(uid string) bool {
	return a != nil && uid != "" && a.VendorUID == uid
}
