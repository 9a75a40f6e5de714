package portal

import (
	"bytes"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"go.uber.org/zap"
)

// SessionCookie names the cookie that ties a browser to its controller
const SessionCookie = "luhambo_portal"

// SessionIdle is how long an unused browser session is kept
const SessionIdle = 12 * time.Hour

// Slides are the landing page carousel headlines
var Slides = []string{
	"Report maintenance issues in minutes",
	"Track progress from pending to completed",
	"Chat with the maintenance team",
}

type browser struct {
	mu       sync.Mutex
	ctrl     *Controller
	lastSeen time.Time
}

// Server renders the portal as HTML pages. Every browser gets its own
// Controller; actions are form posts or links that redirect back to "/".
type Server struct {
	client   *Client
	view     *View
	carousel *Carousel
	logger   *zap.Logger
	base     *zap.Logger

	mu       sync.Mutex
	now      func() time.Time
	browsers map[string]*browser
}

func NewServer(client *Client, view *View, carousel *Carousel, logger *zap.Logger) *Server {
	return &Server{
		client:   client,
		view:     view,
		carousel: carousel,
		logger:   logger.Named("portal"),
		base:     logger,
		now:      time.Now,
		browsers: make(map[string]*browser),
	}
}

// Register mounts the portal routes on r
func (s *Server) Register(r gin.IRoutes) {
	r.GET("/", s.Index)
	r.GET("/show/:page", s.act(func(c *gin.Context, ctrl *Controller) {
		ctrl.ShowPage(c.Param("page"))
	}))
	r.POST("/login", s.act(func(c *gin.Context, ctrl *Controller) {
		ctrl.Login(c.Request.Context(), c.PostForm("kind"), c.PostForm("identifier"), c.PostForm("password"))
	}))
	r.POST("/register", s.act(func(c *gin.Context, ctrl *Controller) {
		ctrl.Register(c.Request.Context(), RegisterForm{
			FullName:        c.PostForm("fullName"),
			StudentNo:       c.PostForm("studentNo"),
			Email:           c.PostForm("email"),
			BuildingName:    c.PostForm("buildingName"),
			RoomNumber:      c.PostForm("roomNumber"),
			Floor:           c.PostForm("floor"),
			Password:        c.PostForm("password"),
			ConfirmPassword: c.PostForm("confirmPassword"),
		})
	}))
	r.POST("/logout", s.act(func(c *gin.Context, ctrl *Controller) {
		ctrl.Logout()
	}))
	r.GET("/view/:name", s.act(func(c *gin.Context, ctrl *Controller) {
		if ctrl.Session().IsAdmin() {
			ctrl.ShowAdminView(c.Request.Context(), c.Param("name"))
			return
		}
		ctrl.ShowStudentView(c.Request.Context(), c.Param("name"))
	}))
	r.POST("/reports", s.act(func(c *gin.Context, ctrl *Controller) {
		ctrl.SubmitReport(c.Request.Context(), c.PostForm("category"), c.PostForm("description"), c.PostForm("priority"))
	}))
	r.GET("/filter/reports", s.act(func(c *gin.Context, ctrl *Controller) {
		ctrl.FilterAdminReports(c.Request.Context(), ReportFilter{
			Status:   c.Query("status"),
			Building: c.Query("building"),
			Priority: c.Query("priority"),
		})
	}))
	r.GET("/filter/users", s.act(func(c *gin.Context, ctrl *Controller) {
		ctrl.FilterUsers(c.Request.Context(), c.Query("search"))
	}))
	r.GET("/reports/:id", s.act(func(c *gin.Context, ctrl *Controller) {
		if id, ok := reportID(c); ok {
			ctrl.ViewReport(c.Request.Context(), id)
		}
	}))
	r.POST("/reports/:id", s.act(func(c *gin.Context, ctrl *Controller) {
		if id, ok := reportID(c); ok {
			ctrl.UpdateReport(c.Request.Context(), id, c.PostForm("status"), c.PostForm("priority"), c.PostForm("adminNotes"))
		}
	}))
	r.GET("/chat/:id", s.act(func(c *gin.Context, ctrl *Controller) {
		if id, ok := reportID(c); ok {
			ctrl.OpenChat(c.Request.Context(), id)
		}
	}))
	r.POST("/chat", s.act(func(c *gin.Context, ctrl *Controller) {
		ctrl.SendChatMessage(c.Request.Context(), c.PostForm("message"))
	}))
	r.POST("/modals/:id/close", s.act(func(c *gin.Context, ctrl *Controller) {
		ctrl.CloseModal(c.Param("id"))
	}))
	r.POST("/carousel/:slide", s.act(func(c *gin.Context, ctrl *Controller) {
		i, err := strconv.Atoi(c.Param("slide"))
		if err == nil {
			err = s.carousel.Select(i)
		}
		if err != nil {
			s.logger.Debug("ignored carousel selection", zap.String("slide", c.Param("slide")), zap.Error(err))
		}
	}))
}

type slide struct {
	Index  int
	Title  string
	Active bool
}

type pageData struct {
	*Controller
	Flash            *Toast
	Slides           []slide
	Buildings        []string
	Categories       []string
	Priorities       []option
	FilterStatuses   []option
	FilterPriorities []option
}

// Index renders the whole page for the caller's session. A toast is shown once.
func (s *Server) Index(c *gin.Context) {
	b := s.browser(c)
	b.mu.Lock()
	defer b.mu.Unlock()

	ctrl := b.ctrl
	current := s.carousel.Current()
	slides := make([]slide, len(Slides))
	for i, title := range Slides {
		slides[i] = slide{Index: i, Title: title, Active: i == current}
	}
	filter := ctrl.Filter()
	data := pageData{
		Controller:       ctrl,
		Flash:            ctrl.ConsumeToast(),
		Slides:           slides,
		Buildings:        cnst.Buildings,
		Categories:       cnst.Categories,
		Priorities:       options(cnst.Priorities, nil, ctrl.SubmitForm().Priority),
		FilterStatuses:   options(cnst.Statuses, statusLabels, filter.Status),
		FilterPriorities: options(cnst.Priorities, nil, filter.Priority),
	}

	html, err := s.view.Render("page", data)
	if err != nil {
		s.logger.Error("failed to render page", zap.String("page", ctrl.Page()), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", bytes.TrimSpace([]byte(html)))
}

// act runs fn against the caller's controller and redirects back to the page
func (s *Server) act(fn func(c *gin.Context, ctrl *Controller)) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := s.browser(c)
		b.mu.Lock()
		fn(c, b.ctrl)
		b.mu.Unlock()
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// browser finds the caller's session by cookie, creating one when absent
func (s *Server) browser(c *gin.Context) *browser {
	id, _ := c.Cookie(SessionCookie)

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if b, ok := s.browsers[id]; ok {
		b.lastSeen = now
		return b
	}

	for k, b := range s.browsers {
		if now.Sub(b.lastSeen) > SessionIdle {
			delete(s.browsers, k)
		}
	}
	id = uuid.NewString()
	b := &browser{ctrl: NewController(s.client, s.view, s.base), lastSeen: now}
	s.browsers[id] = b

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
	return b
}

// Sessions reports how many browser sessions are live
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.browsers)
}

func reportID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
