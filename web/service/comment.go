package service

import (
	"blog/database"
	"blog/database/model"
)

// CommentService manages comments attached to posts.
type CommentService struct{}

// GetComments returns the comments of a post in insertion order, with their
// authors resolved for display.
func (s *CommentService) GetComments(postId int) ([]*model.Comment, error) {
	db := database.GetDB()
	var comments []*model.Comment
	err := db.Model(&model.Comment{}).
		Preload("Author").
		Where("post_id = ?", postId).
		Order("id asc").
		Find(&comments).
		Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment stores a new comment by authorId under postId.
func (s *CommentService) CreateComment(text string, authorId int, postId int) (*model.Comment, error) {
	comment := &model.Comment{
		Text:     text,
		AuthorId: authorId,
		PostId:   postId,
	}
	db := database.GetDB()
	if err := db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
