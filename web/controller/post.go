package controller

import (
	"net/http"
	"strconv"

	"blog/logger"
	"blog/web/middleware"
	"blog/web/service"
	"blog/web/session"

	"github.com/gin-gonic/gin"
)

// PostForm represents the create/edit post request structure.
type PostForm struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	Body     string `form:"body" binding:"required"`
	ImgURL   string `form:"img_url" binding:"required"`
}

// CommentForm represents the comment request structure.
type CommentForm struct {
	Comment string `form:"comment" binding:"required"`
}

// PostController handles viewing, commenting and the admin-only authoring
// operations.
type PostController struct {
	postService    service.PostService
	commentService service.CommentService
}

// NewPostController creates a new PostController and initializes its routes.
func NewPostController(g *gin.RouterGroup) *PostController {
	a := &PostController{}
	a.initRouter(g)
	return a
}

func (a *PostController) initRouter(g *gin.RouterGroup) {
	g.GET("/post/:id", a.showPost)
	g.POST("/post/:id", middleware.RequireLogin(), a.addComment)

	admin := g.Group("/", middleware.RequireAdmin())
	admin.GET("/new-post", a.newPostPage)
	admin.POST("/new-post", a.newPost)
	admin.GET("/edit-post/:id", a.editPostPage)
	admin.POST("/edit-post/:id", a.editPost)
	admin.GET("/delete/:id", a.deletePost)
}

// showPost renders one post with its comments.
func (a *PostController) showPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	post, err := a.postService.GetPost(id)
	if err == service.ErrPostNotFound {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		logger.Error("get post failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	comments, err := a.commentService.GetComments(id)
	if err != nil {
		logger.Error("list comments failed:", err)
		comments = nil
	}

	html(c, "post.html", post.Title, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// addComment stores a comment by the logged-in caller and redirects back to
// the post so the new comment renders immediately.
func (a *PostController) addComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if _, err := a.postService.GetPost(id); err == service.ErrPostNotFound {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		logger.Error("get post failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		notice(c, "Comment text is required.")
		c.Redirect(http.StatusFound, "/post/"+strconv.Itoa(id))
		return
	}

	user := session.GetLoginUser(c)
	if _, err := a.commentService.CreateComment(form.Comment, user.Id, id); err != nil {
		logger.Error("create comment failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/post/"+strconv.Itoa(id))
}

func (a *PostController) newPostPage(c *gin.Context) {
	html(c, "make-post.html", "New Post", gin.H{
		"is_edit": false,
	})
}

// newPost creates a post authored by the administrator.
func (a *PostController) newPost(c *gin.Context) {
	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		notice(c, "All fields are required.")
		c.Redirect(http.StatusFound, "/new-post")
		return
	}

	user := session.GetLoginUser(c)
	_, err := a.postService.CreatePost(form.Title, form.Subtitle, form.Body, form.ImgURL, user.Id)
	if err == service.ErrDuplicateTitle {
		notice(c, "A post with that title already exists.")
		c.Redirect(http.StatusFound, "/new-post")
		return
	} else if err != nil {
		logger.Error("create post failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// editPostPage renders the authoring form pre-filled with the post's values.
func (a *PostController) editPostPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	post, err := a.postService.GetPost(id)
	if err == service.ErrPostNotFound {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		logger.Error("get post failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	html(c, "make-post.html", "Edit Post", gin.H{
		"is_edit": true,
		"post":    post,
	})
}

// editPost overwrites the mutable fields of an existing post.
func (a *PostController) editPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		notice(c, "All fields are required.")
		c.Redirect(http.StatusFound, "/edit-post/"+strconv.Itoa(id))
		return
	}

	user := session.GetLoginUser(c)
	_, err = a.postService.UpdatePost(id, form.Title, form.Subtitle, form.Body, form.ImgURL, user.Id)
	if err == service.ErrPostNotFound {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err == service.ErrDuplicateTitle {
		notice(c, "A post with that title already exists.")
		c.Redirect(http.StatusFound, "/edit-post/"+strconv.Itoa(id))
		return
	} else if err != nil {
		logger.Error("update post failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/post/"+strconv.Itoa(id))
}

// deletePost removes a post and its comments, then returns to the listing.
func (a *PostController) deletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	err = a.postService.DeletePost(id)
	if err == service.ErrPostNotFound {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		logger.Error("delete post failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
