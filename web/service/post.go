package service

import (
	"strings"
	"time"
	"unicode"

	"blog/database"
	"blog/database/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// dateLayout is the display format stamped on a post at creation time.
const dateLayout = "January 02, 2006"

// PostService manages blog post records.
type PostService struct{}

// GetPosts returns all posts in insertion order.
func (s *PostService) GetPosts() ([]*model.BlogPost, error) {
	db := database.GetDB()
	var posts []*model.BlogPost
	err := db.Model(&model.BlogPost{}).
		Preload("Author").
		Order("id asc").
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost returns the post with the given id, or ErrPostNotFound.
func (s *PostService) GetPost(id int) (*model.BlogPost, error) {
	db := database.GetDB()
	post := &model.BlogPost{}
	err := db.Model(&model.BlogPost{}).
		Preload("Author").
		Where("id = ?", id).
		First(post).
		Error
	if database.IsNotFound(err) {
		return nil, ErrPostNotFound
	} else if err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePost stores a new post authored by authorId, normalizing the display
// casing and stamping the current date. A duplicate title is rejected by the
// unique index.
func (s *PostService) CreatePost(title, subtitle, body, imgURL string, authorId int) (*model.BlogPost, error) {
	// cases.Caser carries state, so build one per call
	post := &model.BlogPost{
		Title:    cases.Title(language.English).String(title),
		Subtitle: capitalize(subtitle),
		Body:     capitalize(body),
		ImgURL:   imgURL,
		AuthorId: authorId,
		Date:     time.Now().Format(dateLayout),
	}

	db := database.GetDB()
	err := db.Create(post).Error
	if database.IsDuplicate(err) {
		return nil, ErrDuplicateTitle
	} else if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost overwrites the mutable fields of an existing post. The creation
// date is kept as stamped.
func (s *PostService) UpdatePost(id int, title, subtitle, body, imgURL string, authorId int) (*model.BlogPost, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Subtitle = subtitle
	post.Body = body
	post.ImgURL = imgURL
	post.AuthorId = authorId
	post.Author = nil

	db := database.GetDB()
	err = db.Save(post).Error
	if database.IsDuplicate(err) {
		return nil, ErrDuplicateTitle
	} else if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post together with its comments in one transaction,
// so no orphaned comment can survive.
func (s *PostService) DeletePost(id int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.BlogPost{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPostNotFound
		}
		return tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error
	})
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
