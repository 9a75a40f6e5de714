package portal

import (
	"context"

	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/dto"
	"go.uber.org/zap"
)

// ShowAdminView switches the admin dashboard to view and loads its data
func (c *Controller) ShowAdminView(ctx context.Context, view string) {
	if !c.session.IsAdmin() {
		return
	}
	c.dashboardView = view
	switch view {
	case ViewDashboard:
		c.updateAdminDashboard(ctx)
	case ViewReports:
		c.loadAdminReports(ctx)
	case ViewUsers:
		c.loadAdminUsers(ctx)
	}
}

func (c *Controller) updateAdminDashboard(ctx context.Context) {
	if res := c.client.AdminStats(ctx); res.Success {
		var stats AdminStats
		if err := res.Decode("stats", &stats); err != nil {
			c.logger.Warn("failed to decode admin stats", zap.Error(err))
		} else {
			c.setCount("admin-total-reports", stats.TotalReports)
			c.setCount("admin-pending-reports", stats.PendingReports)
			c.setCount("admin-progress-reports", stats.InProgressReports)
			c.setCount("admin-completed-today", stats.CompletedToday)
			c.setCount("admin-total-users", stats.TotalUsers)
		}
	}

	const failure = "Error loading dashboard data"
	reports := c.reports(c.client.Reports(ctx, ReportFilter{}))
	if !c.render("reports-by-status", "reports-by-status", countStatuses(reports), failure) {
		return
	}
	if !c.render("reports-by-building", "reports-by-building", buildingBars(reports), failure) {
		return
	}
	recent := reports
	if len(recent) > RecentReports {
		recent = recent[:RecentReports]
	}
	if !c.render("recent-activity", "recent-activity", recent, failure) {
		return
	}
	c.render("filter-building", "building-options", buildingOptions(reports), failure)
}

func (c *Controller) loadAdminReports(ctx context.Context) {
	reports := c.reports(c.client.Reports(ctx, c.filter))
	c.render("admin-all-reports-body", "admin-all-reports", reports, "Error loading reports")
}

func (c *Controller) loadAdminUsers(ctx context.Context) {
	var users []Student
	if res := c.client.Users(ctx, c.search); res.Success {
		if err := res.Decode("users", &users); err != nil {
			c.logger.Warn("failed to decode users", zap.Error(err))
			users = nil
		}
	}
	c.render("admin-users-body", "admin-users", users, "Error loading users")
}

// FilterAdminReports reloads the admin listing narrowed by f
func (c *Controller) FilterAdminReports(ctx context.Context, f ReportFilter) {
	if !c.session.IsAdmin() {
		return
	}
	c.filter = f
	c.dashboardView = ViewReports
	c.loadAdminReports(ctx)
}

// FilterUsers reloads the user listing with a free-text search
func (c *Controller) FilterUsers(ctx context.Context, search string) {
	if !c.session.IsAdmin() {
		return
	}
	c.search = search
	c.dashboardView = ViewUsers
	c.loadAdminUsers(ctx)
}

// ViewReport opens the detail modal; admins also get the edit controls
func (c *Controller) ViewReport(ctx context.Context, id uint) {
	if !c.session.LoggedIn() {
		return
	}
	r, ok := c.findReport(ctx, id)
	if !ok {
		c.notify(ToastError, "Error loading report details")
		return
	}
	if r == nil {
		c.notify(ToastError, "Report not found")
		return
	}
	if !c.render("report-modal-body", "report-detail", newReportDetail(*r, c.session), "Error loading report details") {
		return
	}
	c.modals[ModalReport] = true
}

// UpdateReport saves the admin's status, priority and notes, then refreshes both admin views
func (c *Controller) UpdateReport(ctx context.Context, id uint, status, priority, notes string) {
	if !c.session.IsAdmin() {
		return
	}
	if !cnst.ValidStatus(status) || !cnst.ValidPriority(priority) {
		c.notify(ToastError, "Please select a valid status and priority")
		return
	}

	res := c.client.UpdateReport(ctx, id, dto.UpdateReportRequest{
		Status:     status,
		Priority:   priority,
		AdminNotes: notes,
	})
	if !res.Success {
		c.notify(ToastError, orDefault(res.Message, "Failed to update report"))
		return
	}

	c.notify(ToastSuccess, "Report updated successfully!")
	c.CloseModal(ModalReport)
	c.updateAdminDashboard(ctx)
	c.loadAdminReports(ctx)
}
