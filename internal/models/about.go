package models

import "time"

// AboutKey is the fixed logical key of the single about-us item.
const AboutKey = "about-us"

// AboutUs is one language variant of the company about page. There is exactly one
// logical item, so Key is always AboutKey.
type AboutUs struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"column:about_key;uniqueIndex:idx_about_key_lang;not null;default:about-us" json:"key"`
	LanguageID  uint      `gorm:"uniqueIndex:idx_about_key_lang;not null;index" json:"languageId"`
	Language    *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Mission     string    `gorm:"type:text" json:"mission"`
	Vision      string    `gorm:"type:text" json:"vision"`
	ImageURL    string    `gorm:"column:image_url" json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (AboutUs) TableName() string {
	return "about_us"
}

func (a AboutUs) LogicalKey() string { return a.Key }
func (a AboutUs) LangID() uint       { return a.LanguageID }
