package models

import "time"

// Post represents a feed post authored by an alumni.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Image     *string   `json:"image,omitempty" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Resolved on read, no db tags
	Author   *User     `json:"user,omitempty"`
	Likes    []int64   `json:"likes"`
	Comments []Comment `json:"comments"`
}

// Comment is a single entry in a post's comment sequence, newest first.
// Name snapshots the author's display name at comment time.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"date" db:"created_at"`
}

// LikedBy reports whether userID is in the post's like set.
func (p *Post) LikedBy(userID int64) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
