package entity

import (
	"time"
)

type ProductStatus string

const (
	ProductPending  ProductStatus = "pending"
	ProductApproved ProductStatus = "approved"
	ProductRejected ProductStatus = "rejected"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductPending, ProductApproved, ProductRejected:
		return true
	}
	return false
}

// PricePoint is one entry of a product's append-only price history.
type PricePoint struct {
	Date  string  `json:"date" firestore:"date"`
	Price float64 `json:"price" firestore:"price"`
}

type Product struct {
	ID           string        `json:"id" firestore:"id"`
	Name         string        `json:"name" firestore:"name"`
	MarketName   string        `json:"marketName" firestore:"marketName"`
	VendorUID    string        `json:"vendorUid" firestore:"vendorUid"`
	VendorName   string        `json:"vendorName,omitempty" firestore:"vendorName,omitempty"`
	Date         string        `json:"date" firestore:"date"`
	MarketDesc   string        `json:"marketDesc,omitempty" firestore:"marketDesc,omitempty"`
	ImageURL     string        `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	PricePerUnit float64       `json:"pricePerUnit" firestore:"pricePerUnit"`
	Prices       []PricePoint  `json:"prices" firestore:"prices"`
	Reviews      []Review      `json:"reviews" firestore:"reviews"`
	ItemDesc     string        `json:"itemDesc,omitempty" firestore:"itemDesc,omitempty"`
	Status       ProductStatus `json:"status" firestore:"status"`
	Feedback     string        `json:"feedback,omitempty" firestore:"feedback,omitempty"`
	Reason       string        `json:"reason,omitempty" firestore:"reason,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt" firestore:"updatedAt"`
}

// OwnedBy reports whether uid is the listing vendor.
func (p *Product) OwnedBy(uid string) bool {
	return p != nil && uid != "" && p.VendorUID == uid
}
