// Package session resolves the caller identity and flash notices from the
// request's signed cookie session.
package session

import (
	"encoding/gob"

	"blog/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	loginUser = "LOGIN_USER"
	notice    = "NOTICE"
)

func init() {
	gob.Register(model.User{})
}

func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, *user)
	return s.Save()
}

func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(model.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}

// SetNotice stores a one-shot user-visible message in the session.
func SetNotice(c *gin.Context, msg string) error {
	s := sessions.Default(c)
	s.AddFlash(msg, notice)
	return s.Save()
}

// TakeNotice returns pending notices and removes them from the session.
func TakeNotice(c *gin.Context) []string {
	s := sessions.Default(c)
	flashes := s.Flashes(notice)
	if len(flashes) == 0 {
		return nil
	}
	if err := s.Save(); err != nil {
		return nil
	}
	msgs := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
