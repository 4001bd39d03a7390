package controller

import (
	"blog/logger"
	"blog/web/service"

	"github.com/gin-gonic/gin"
)

// IndexController handles the post listing and the static pages.
type IndexController struct {
	postService service.PostService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/about", a.about)
	g.GET("/contact", a.contact)
}

// index renders the home page with every post in insertion order.
func (a *IndexController) index(c *gin.Context) {
	posts, err := a.postService.GetPosts()
	if err != nil {
		logger.Error("list posts failed:", err)
		posts = nil
	}
	html(c, "index.html", "Blog", gin.H{
		"all_posts": posts,
	})
}

func (a *IndexController) about(c *gin.Context) {
	html(c, "about.html", "About", nil)
}

func (a *IndexController) contact(c *gin.Context) {
	html(c, "contact.html", "Contact", nil)
}
