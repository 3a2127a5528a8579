package models

import "time"

// ContactSubmission is one language variant of a contact-form submission. The
// visitor's message is translated across all languages so admins can read it in
// whichever language their dashboard runs in.
type ContactSubmission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ContactID   string    `gorm:"column:contact_id;uniqueIndex:idx_contacts_key_lang;not null;index" json:"contactId"`
	LanguageID  uint      `gorm:"uniqueIndex:idx_contacts_key_lang;not null;index" json:"languageId"`
	Language    *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null;index" json:"email"`
	Phone       string    `json:"phone"`
	ServiceSlug string    `gorm:"column:service_slug;index" json:"serviceSlug"`
	Subject     string    `json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	IsRead      bool      `gorm:"index;default:false" json:"isRead"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

func (c ContactSubmission) LogicalKey() string { return c.ContactID }
func (c ContactSubmission) LangID() uint       { return c.LanguageID }
