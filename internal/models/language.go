package models

import "time"

// Text direction values for Language.Dir.
const (
	DirLTR = "ltr"
	DirRTL = "rtl"
)

type Language struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"uniqueIndex;not null;size:10" json:"code"` // ISO 639-1 code (e.g., 'en', 'ar')
	Name      string    `gorm:"not null" json:"name"`                     // Full name (e.g., 'English', 'Arabic')
	Dir       string    `gorm:"not null;size:3;default:ltr" json:"dir"`   // 'ltr' or 'rtl'
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Language) TableName() string {
	return "languages"
}

// SupportedLanguages is the fixed language set seeded at startup. English is the
// source language every other row is translated from.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English", Dir: DirLTR},
	{Code: "ar", Name: "Arabic", Dir: DirRTL},
	{Code: "pt", Name: "Portuguese", Dir: DirLTR},
	{Code: "zh", Name: "Chinese", Dir: DirLTR},
	{Code: "ja", Name: "Japanese", Dir: DirLTR},
	{Code: "de", Name: "German", Dir: DirLTR},
	{Code: "fr", Name: "French", Dir: DirLTR},
}

// SourceLanguageCode is the language admin content is authored in.
const SourceLanguageCode = "en"
