// Package model defines the database models for the blog.
package model

// User is a registered account. The administrator flag is stored on the
// record itself so authorization never depends on row numbering.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Name         string `json:"name"`
	IsAdmin      bool   `json:"isAdmin" gorm:"not null;default:false"`
}

func (u *User) TableName() string {
	return "users"
}

// IsAuthenticated reports whether u represents a logged-in caller.
func (u *User) IsAuthenticated() bool {
	return u != nil && u.Id > 0
}

// GetId returns the user's identity, or 0 for an anonymous caller.
func (u *User) GetId() int {
	if u == nil {
		return 0
	}
	return u.Id
}

// BlogPost is a published post. Date is stored display-formatted, stamped
// once at creation and never changed by edits.
type BlogPost struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string `json:"title" gorm:"uniqueIndex;not null"`
	Subtitle string `json:"subtitle" gorm:"not null"`
	Date     string `json:"date" gorm:"not null"`
	Body     string `json:"body" gorm:"type:text;not null"`
	ImgURL   string `json:"imgUrl" gorm:"column:img_url;not null"`
	AuthorId int    `json:"authorId" gorm:"index;not null"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorId"`
}

func (p *BlogPost) TableName() string {
	return "blog_posts"
}

// Comment belongs to one post and one authoring user. Comments are removed
// together with their parent post.
type Comment struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Text     string `json:"text" gorm:"type:text;not null"`
	AuthorId int    `json:"authorId" gorm:"index;not null"`
	PostId   int    `json:"postId" gorm:"index;not null"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorId"`
}

func (c *Comment) TableName() string {
	return "comments"
}
