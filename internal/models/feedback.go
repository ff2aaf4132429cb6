package models

import "time"

type FeedbackType string

const (
	FeedbackGeneral FeedbackType = "Feedback"
	FeedbackFeature FeedbackType = "Feature Request"
)

type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "Pending"
	FeedbackReviewed FeedbackStatus = "Reviewed"
)

type Feedback struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	UserName  string         `json:"userName"`
	Type      FeedbackType   `json:"type"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Status    FeedbackStatus `json:"status"`
}

// CreateFeedbackRequest represents the request body for submitting feedback
type CreateFeedbackRequest struct {
	Type    FeedbackType `json:"type"`
	Content string       `json:"content"`
}
