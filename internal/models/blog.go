package models

import "time"

// Blog is one language variant of a blog post, keyed by slug.
type Blog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"uniqueIndex:idx_blogs_slug_lang;not null;index" json:"slug"`
	LanguageID  uint      `gorm:"uniqueIndex:idx_blogs_slug_lang;not null;index" json:"languageId"`
	Language    *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Title       string    `gorm:"not null" json:"title"`
	Excerpt     string    `gorm:"type:text" json:"excerpt"`
	Content     string    `gorm:"type:text" json:"content"`
	ImageURL    string    `gorm:"column:image_url" json:"imageUrl"`
	IsActive    bool      `gorm:"index;default:true" json:"isActive"`
	PublishedAt time.Time `gorm:"index" json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Blog) TableName() string {
	return "blogs"
}

func (b Blog) LogicalKey() string { return b.Slug }
func (b Blog) LangID() uint       { return b.LanguageID }

// Comment is one language variant of a visitor comment on a blog post. Rows
// sharing a CommentID are translations of the same comment; IsApproved must stay
// identical across them.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CommentID  string    `gorm:"column:comment_id;uniqueIndex:idx_comments_key_lang;not null;index" json:"commentId"`
	BlogSlug   string    `gorm:"column:blog_slug;not null;index" json:"blogSlug"`
	LanguageID uint      `gorm:"uniqueIndex:idx_comments_key_lang;not null;index" json:"languageId"`
	Language   *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	AuthorName string    `gorm:"not null" json:"authorName"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsApproved bool      `gorm:"index;default:false" json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c Comment) LogicalKey() string { return c.CommentID }
func (c Comment) LangID() uint       { return c.LanguageID }
