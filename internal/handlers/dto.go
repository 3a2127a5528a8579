package handlers

import "time"

type ServiceRequest struct {
	Name             string `json:"name"`
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	ShortDescription string `json:"shortDescription"`
	Description      string `json:"description"`
	ImageURL         string `json:"imageUrl"`
	IsActive         *bool  `json:"isActive"`
	Order            *int   `json:"order"`
}

type ServiceUpdateRequest struct {
	Name             *string `json:"name"`
	Title            *string `json:"title"`
	Subtitle         *string `json:"subtitle"`
	ShortDescription *string `json:"shortDescription"`
	Description      *string `json:"description"`
	ImageURL         *string `json:"imageUrl"`
	IsActive         *bool   `json:"isActive"`
	Order            *int    `json:"order"`
}

type BlogRequest struct {
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"imageUrl"`
	IsActive    *bool      `json:"isActive"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type BlogUpdateRequest struct {
	Title       *string    `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	ImageURL    *string    `json:"imageUrl"`
	IsActive    *bool      `json:"isActive"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type CommentRequest struct {
	AuthorName string `json:"authorName"`
	Text       string `json:"text"`
}

type ApproveRequest struct {
	IsApproved bool `json:"isApproved"`
}

type ReviewRequest struct {
	AuthorName string `json:"authorName"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	IsActive   *bool  `json:"isActive"`
	Order      *int   `json:"order"`
}

type ReviewUpdateRequest struct {
	AuthorName *string `json:"authorName"`
	Text       *string `json:"text"`
	Rating     *int    `json:"rating"`
	IsActive   *bool   `json:"isActive"`
	Order      *int    `json:"order"`
}

type FAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	IsActive *bool  `json:"isActive"`
	Order    *int   `json:"order"`
}

type FAQUpdateRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`
}

type StatRequest struct {
	Label    string `json:"label"`
	Value    int    `json:"value"`
	Icon     string `json:"icon"`
	IsActive *bool  `json:"isActive"`
	Order    *int   `json:"order"`
}

type StatUpdateRequest struct {
	Label    *string `json:"label"`
	Value    *int    `json:"value"`
	Icon     *string `json:"icon"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`
}

type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceSlug string `json:"serviceSlug"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

type MarkReadRequest struct {
	IsRead bool `json:"isRead"`
}

type AboutRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Mission     string  `json:"mission"`
	Vision      string  `json:"vision"`
	ImageURL    *string `json:"imageUrl"`
}

type ReorderRequest struct {
	Key   string `json:"key"`
	Order int    `json:"order"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
