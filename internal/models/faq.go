package models

import "time"

// FAQ is one language variant of a frequently-asked question, keyed by an opaque
// FAQID.
type FAQ struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FAQID      string    `gorm:"column:faq_id;uniqueIndex:idx_faqs_key_lang;not null;index" json:"faqId"`
	LanguageID uint      `gorm:"uniqueIndex:idx_faqs_key_lang;not null;index" json:"languageId"`
	Language   *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	IsActive   bool      `gorm:"index;default:true" json:"isActive"`
	SortOrder  int       `gorm:"column:sort_order;index" json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (FAQ) TableName() string {
	return "faqs"
}

func (f FAQ) LogicalKey() string { return f.FAQID }
func (f FAQ) LangID() uint       { return f.LanguageID }
