package models

import "time"

// Review is one language variant of a customer review, keyed by an opaque
// ReviewID. Rating, IsActive and SortOrder are shared across sibling rows.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReviewID   string    `gorm:"column:review_id;uniqueIndex:idx_reviews_key_lang;not null;index" json:"reviewId"`
	LanguageID uint      `gorm:"uniqueIndex:idx_reviews_key_lang;not null;index" json:"languageId"`
	Language   *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	AuthorName string    `gorm:"not null" json:"authorName"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Rating     int       `gorm:"not null" json:"rating" example:"5"`
	IsActive   bool      `gorm:"index;default:true" json:"isActive"`
	SortOrder  int       `gorm:"column:sort_order;index" json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r Review) LogicalKey() string { return r.ReviewID }
func (r Review) LangID() uint       { return r.LanguageID }
