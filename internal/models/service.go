package models

import "time"

// Service is one language variant of an offered service (cleaning, pest control,
// AC maintenance, ...). Rows sharing a slug are translations of the same service;
// ImageURL, IsActive and SortOrder must stay identical across them.
type Service struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Slug             string    `gorm:"uniqueIndex:idx_services_slug_lang;not null;index" json:"slug" example:"pest-control"`
	LanguageID       uint      `gorm:"uniqueIndex:idx_services_slug_lang;not null;index" json:"languageId"`
	Language         *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Name             string    `gorm:"not null" json:"name" example:"Pest Control"`
	Title            string    `json:"title" example:"Pest Control"`
	Subtitle         string    `json:"subtitle" example:"Fast"`
	ShortDescription string    `gorm:"type:text" json:"shortDescription"`
	Description      string    `gorm:"type:text" json:"description"`
	ImageURL         string    `gorm:"column:image_url" json:"imageUrl"`
	IsActive         bool      `gorm:"index;default:true" json:"isActive"`
	SortOrder        int       `gorm:"column:sort_order;index" json:"order"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Service) TableName() string {
	return "services"
}

func (s Service) LogicalKey() string { return s.Slug }
func (s Service) LangID() uint       { return s.LanguageID }
