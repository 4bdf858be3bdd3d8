package entity

import (
	"time"
)

const OrderCompleted = "completed"

type Order struct {
	ID              string    `json:"id" firestore:"id"`
	UserUID         string    `json:"userUid" firestore:"userUid"`
	ProductID       string    `json:"productId" firestore:"productId"`
	ProductName     string    `json:"productName,omitempty" firestore:"productName,omitempty"`
	MarketName      string    `json:"marketName,omitempty" firestore:"marketName,omitempty"`
	Price           float64   `json:"price" firestore:"price"`
	Date            string    `json:"date" firestore:"date"`
	Status          string    `json:"status" firestore:"status"`
	PaymentStatus   string    `json:"paymentStatus,omitempty" firestore:"paymentStatus,omitempty"`
	StripeSessionID string    `json:"stripeSessionId,omitempty" firestore:"stripeSessionId,omitempty"`
	SessionID       string    `json:"sessionId,omitempty" firestore:"sessionId,omitempty"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
}
