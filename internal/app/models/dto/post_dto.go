package dto

// CreatePostRequest is the body of POST /api/posts.
type CreatePostRequest struct {
	Text  string  `json:"text" binding:"required"`
	Image *string `json:"image,omitempty"`
}

// CommentRequest is the body of POST /api/posts/:id/comment.
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}
