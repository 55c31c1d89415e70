package model

import "time"

// Review is a product rating left by a customer, optionally answered by an admin.
type Review struct {
	ID        string
	ProductID string
	UserID    string
	UserName  string
	Rating    int
	Comment   string
	Reply     *string
	RepliedAt *time.Time
	CreatedAt time.Time
}

// ReviewReply is the committed result of an admin reply.
type ReviewReply struct {
	Review       Review
	Notification Notification
}
