package models

import "time"

// Author is the embedded author projection attached to blogs and comments.
type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

// BlogSummary is a single element of the blogs list view.
type BlogSummary struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	FeaturedImage string    `json:"featuredImage"`
	Category      string    `json:"category"`
	Author        Author    `json:"author"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BlogDetail is the full blog record served by GET /blogs/{id}.
type BlogDetail struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	FeaturedImage string    `json:"featuredImage"`
	Category      string    `json:"category"`
	Published     bool      `json:"published"`
	Author        Author    `json:"author"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	LikesCount    int       `json:"likesCount"`
	HasLiked      bool      `json:"hasLiked"`
	Comments      []Comment `json:"comments"`
}

// BlogPayload carries the editable blog fields for create and update.
type BlogPayload struct {
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featuredImage,omitempty"`
	Category      string `json:"category,omitempty"`
	Published     bool   `json:"published"`
}

// Comment is a reader comment attached to a blog.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	User      Author    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentPayload is the body of POST /blogs/{id}/comments.
type CommentPayload struct {
	Content string `json:"content"`
}

// LikeState is the updated like state returned by POST /blogs/{id}/like.
type LikeState struct {
	LikesCount int  `json:"likesCount"`
	HasLiked   bool `json:"hasLiked"`
}
