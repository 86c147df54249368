package models

import "time"

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
)

// RecipeReport is a user complaint about a recipe, queued for admin review.
type RecipeReport struct {
	ID        string       `gorm:"primaryKey" json:"id" example:"f9e8d7c6"`
	RecipeID  string       `json:"recipe_id" example:"d3f1c2b4"`
	UserID    string       `json:"user_id" example:"a1b2c3d4"`
	Reason    string       `json:"reason" example:"inappropriate"`
	Details   string       `json:"details" example:"Contains an unsafe cooking step."`
	CreatedAt time.Time    `json:"created_at" example:"2023-01-01T00:00:00Z"`
	Status    ReportStatus `json:"status" example:"pending"`
}
