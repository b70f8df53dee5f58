package http

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/userdeck/internal/pkg/apperror"
	"github.com/nekogravitycat/userdeck/internal/pkg/response"
	"github.com/nekogravitycat/userdeck/internal/screen"
	"github.com/nekogravitycat/userdeck/internal/user"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates returns the parsed HTML templates of the screen page.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Navigator is the part of the screen the handlers drive.
type Navigator interface {
	Render() screen.View
	Prev() (screen.View, error)
	Next() (screen.View, error)
	UserAt(i int) (user.User, error)
}

// Thumbnailer produces the avatar image for a URL.
type Thumbnailer interface {
	FetchThumbnail(ctx context.Context, url string, size int) (io.Reader, error)
}

type Handler struct {
	screen     Navigator
	thumbs     Thumbnailer
	avatarSize int
}

func NewHandler(s Navigator, thumbs Thumbnailer, avatarSize int) *Handler {
	return &Handler{
		screen:     s,
		thumbs:     thumbs,
		avatarSize: avatarSize,
	}
}

// Get returns the current view of the screen.
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, NewScreenResponse(h.screen.Render()))
}

// Prev moves to the previous user and returns the new view.
func (h *Handler) Prev(c *gin.Context) {
	h.navigate(c, h.screen.Prev)
}

// Next moves to the next user and returns the new view.
func (h *Handler) Next(c *gin.Context) {
	h.navigate(c, h.screen.Next)
}

func (h *Handler) navigate(c *gin.Context, move func() (screen.View, error)) {
	v, err := move()
	if err != nil {
		if errors.Is(err, screen.ErrNotReady) {
			response.Error(c, apperror.Conflict(err, "no user data to navigate"))
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewScreenResponse(v))
}

// Avatar serves a user's avatar as a square JPEG. The query parameter i
// selects the user by position so a rendered page keeps showing the avatar
// of the user it displays; without it the current user is used.
func (h *Handler) Avatar(c *gin.Context) {
	var req AvatarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid avatar index"))
		return
	}

	u, err := h.avatarUser(req)
	if err != nil {
		switch {
		case errors.Is(err, screen.ErrNotReady):
			response.Error(c, apperror.Conflict(err, "no user data available"))
		case errors.Is(err, screen.ErrIndexOutOfRange):
			response.Error(c, apperror.New(http.StatusBadRequest, "invalid avatar index"))
		default:
			response.Error(c, err)
		}
		return
	}

	thumb, err := h.thumbs.FetchThumbnail(c.Request.Context(), u.Avatar, h.avatarSize)
	if err != nil {
		response.Error(c, apperror.BadGateway(err, "failed to load avatar"))
		return
	}

	// Without an index the URL stays the same while the current user changes.
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Type", "image/jpeg")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, thumb); err != nil {
		// Response already started
		return
	}
}

func (h *Handler) avatarUser(req AvatarRequest) (user.User, error) {
	if req.Index != nil {
		return h.screen.UserAt(*req.Index)
	}

	v := h.screen.Render()
	if !v.Ready() {
		return user.User{}, screen.ErrNotReady
	}
	return *v.User, nil
}

// Page renders the screen as HTML.
func (h *Handler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "screen.html", h.screen.Render())
}

// PagePrev handles the Previous button of the HTML page.
func (h *Handler) PagePrev(c *gin.Context) {
	// Pressing a button before data exists changes nothing.
	_, _ = h.screen.Prev()
	c.Redirect(http.StatusSeeOther, "/")
}

// PageNext handles the Next button of the HTML page.
func (h *Handler) PageNext(c *gin.Context) {
	_, _ = h.screen.Next()
	c.Redirect(http.StatusSeeOther, "/")
}
