package portal

import (
	"context"
	"html/template"
	"strconv"

	"go.uber.org/zap"
)

// Pages
const (
	PageHome     = "home-page"
	PageLogin    = "login-page"
	PageRegister = "register-page"
	PageStudent  = "student-dashboard"
	PageAdmin    = "admin-dashboard"
)

// Dashboard views
const (
	ViewDashboard = "dashboard"
	ViewSubmit    = "submit"
	ViewReports   = "reports"
	ViewUsers     = "users"
)

// Modals
const (
	ModalReport = "report-modal"
	ModalChat   = "chat-modal"
)

// Controller drives the portal screens. It keeps the session, the visible
// page and view, open modals, the last toast and the rendered regions
// keyed by element id.
type Controller struct {
	client  *Client
	view    *View
	logger  *zap.Logger
	session *Session

	page          string
	dashboardView string
	modals        map[string]bool
	toast         *Toast
	regions       map[string]string
	fragments     map[string]bool

	submitForm SubmitForm
	filter     ReportFilter
	search     string
}

func NewController(client *Client, view *View, logger *zap.Logger) *Controller {
	return &Controller{
		client:    client,
		view:      view,
		logger:    logger.Named("portal"),
		session:   &Session{},
		page:      PageHome,
		modals:    make(map[string]bool),
		regions:   make(map[string]string),
		fragments: make(map[string]bool),
	}
}

func (c *Controller) Session() *Session       { return c.session }
func (c *Controller) Page() string            { return c.page }
func (c *Controller) DashboardView() string   { return c.dashboardView }
func (c *Controller) Toast() *Toast           { return c.toast }
func (c *Controller) SubmitForm() SubmitForm  { return c.submitForm }
func (c *Controller) Filter() ReportFilter    { return c.filter }
func (c *Controller) Search() string          { return c.search }
func (c *Controller) Region(id string) string { return c.regions[id] }
func (c *Controller) ModalOpen(id string) bool {
	return c.modals[id]
}

// RegionHTML returns a region ready for a page: rendered fragments as
// they are, plain text regions escaped.
func (c *Controller) RegionHTML(id string) template.HTML {
	if c.fragments[id] {
		return template.HTML(c.regions[id])
	}
	return template.HTML(template.HTMLEscapeString(c.regions[id]))
}

// ConsumeToast returns the pending toast and clears it
func (c *Controller) ConsumeToast() *Toast {
	t := c.toast
	c.toast = nil
	return t
}

// ShowPage switches the visible page. Dashboards need a matching session.
func (c *Controller) ShowPage(page string) {
	switch page {
	case PageHome, PageLogin, PageRegister:
	case PageStudent:
		if c.session.Student == nil {
			return
		}
	case PageAdmin:
		if !c.session.IsAdmin() {
			return
		}
	default:
		return
	}
	c.page = page
}

// CloseModal hides the modal with the given id
func (c *Controller) CloseModal(id string) {
	c.modals[id] = false
}

func (c *Controller) notify(kind ToastKind, message string) {
	c.toast = &Toast{Message: message, Kind: kind}
}

// render fills region from the named fragment; failures become an error toast
func (c *Controller) render(region, name string, data any, failure string) bool {
	html, err := c.view.Render(name, data)
	if err != nil {
		c.logger.Error("failed to render", zap.String("region", region), zap.String("template", name), zap.Error(err))
		c.notify(ToastError, failure)
		return false
	}
	c.regions[region] = html
	c.fragments[region] = true
	return true
}

func (c *Controller) setText(region, text string) {
	c.regions[region] = text
	delete(c.fragments, region)
}

func (c *Controller) setCount(region string, n int64) {
	c.setText(region, strconv.FormatInt(n, 10))
}

// reports decodes the reports field, treating failures as an empty list
func (c *Controller) reports(res Result) []Report {
	if !res.Success {
		return nil
	}
	var out []Report
	if err := res.Decode("reports", &out); err != nil {
		c.logger.Warn("failed to decode reports", zap.Error(err))
		return nil
	}
	return out
}

// findReport looks a report up in the full listing, as the API has no single-report read
func (c *Controller) findReport(ctx context.Context, id uint) (*Report, bool) {
	res := c.client.Reports(ctx, ReportFilter{})
	if !res.Success {
		return nil, false
	}
	for _, r := range c.reports(res) {
		if r.ID == id {
			return &r, true
		}
	}
	return nil, true
}
