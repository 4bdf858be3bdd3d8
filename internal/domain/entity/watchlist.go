package entity

import (
	"time"
)

type WatchlistItem struct {
	ID          string    `json:"id" firestore:"id"`
	UserUID     string    `json:"userUid" firestore:"userUid"`
	UserName    string    `json:"userName,omitempty" firestore:"userName,omitempty"`
	ProductID   string    `json:"productId" firestore:"productId"`
	ProductName string    `json:"productName,omitempty" firestore:"productName,omitempty"`
	MarketName  string    `json:"marketName,omitempty" firestore:"marketName,omitempty"`
	VendorUID   string    `json:"vendorUid,omitempty" firestore:"vendorUid,omitempty"`
	VendorName  string    `json:"vendorName,omitempty" firestore:"vendorName,omitempty"`
	Date        string    `json:"date,omitempty" firestore:"date,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// WatchlistItemWithImage is a watchlist entry decorated with the product's
// current image.
type WatchlistItemWithImage struct {
	WatchlistItem
	ImageURL string `json:"imageUrl"`
}
