// Package service implements the persistence-backed operations of the blog.
package service

import "errors"

var (
	ErrDuplicateEmail = errors.New("an account with that email already exists")
	ErrDuplicateTitle = errors.New("a post with that title already exists")
	ErrUnknownEmail   = errors.New("no account with that email exists")
	ErrBadPassword    = errors.New("password is incorrect")
	ErrPostNotFound   = errors.New("post does not exist")
)
