package portal

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/dto"
	"go.uber.org/zap"
)

// RecentReports is how many reports the dashboards preview
const RecentReports = 5

// ShowStudentView switches the student dashboard to view and loads its data
func (c *Controller) ShowStudentView(ctx context.Context, view string) {
	if c.session.Student == nil {
		return
	}
	c.dashboardView = view
	switch view {
	case ViewDashboard:
		c.updateStudentDashboard(ctx)
	case ViewSubmit:
		c.PopulateSubmitForm()
	case ViewReports:
		c.loadStudentReports(ctx)
	}
}

func (c *Controller) updateStudentDashboard(ctx context.Context) {
	st := c.session.Student

	if res := c.client.StudentStats(ctx, st.ID); res.Success {
		var stats StudentStats
		if err := res.Decode("stats", &stats); err != nil {
			c.logger.Warn("failed to decode student stats", zap.Error(err))
		} else {
			c.setCount("total-reports-stat", stats.TotalReports)
			c.setCount("pending-reports-stat", stats.PendingReports)
			c.setCount("progress-reports-stat", stats.InProgressReports)
			c.setCount("completed-reports-stat", stats.CompletedReports)
		}
	}

	reports := c.reports(c.client.StudentReports(ctx, st.ID))
	if len(reports) > RecentReports {
		reports = reports[:RecentReports]
	}
	c.render("student-recent-reports-body", "student-recent-reports", reports, "Error loading dashboard data")
}

func (c *Controller) loadStudentReports(ctx context.Context) {
	reports := c.reports(c.client.StudentReports(ctx, c.session.Student.ID))
	c.render("student-all-reports-body", "student-all-reports", reports, "Error loading reports")
}

// PopulateSubmitForm copies the student's location into the report form
func (c *Controller) PopulateSubmitForm() {
	st := c.session.Student
	if st == nil {
		return
	}
	c.submitForm.StudentNo = st.StudentNo
	c.submitForm.BuildingName = st.BuildingName
	c.submitForm.RoomNumber = st.RoomNumber
	c.submitForm.Floor = st.Floor
	if c.submitForm.Priority == "" {
		c.submitForm.Priority = cnst.PriorityNormal
	}
}

// SubmitReport files a report for the signed-in student at their own location
func (c *Controller) SubmitReport(ctx context.Context, category, description, priority string) {
	st := c.session.Student
	if st == nil {
		return
	}
	c.submitForm.Category = category
	c.submitForm.Description = description
	c.submitForm.Priority = priority

	if !slices.Contains(cnst.Categories, category) || strings.TrimSpace(description) == "" {
		c.notify(ToastError, "Please fill in all required fields")
		return
	}

	res := c.client.SubmitReport(ctx, dto.SubmitReportRequest{
		StudentID:        st.ID,
		StudentNo:        st.StudentNo,
		BuildingName:     st.BuildingName,
		RoomNumber:       st.RoomNumber,
		Floor:            st.Floor,
		IssueDescription: description,
		Category:         category,
		Priority:         priority,
	})
	if !res.Success {
		c.notify(ToastError, orDefault(res.Message, "Failed to submit report"))
		return
	}

	c.notify(ToastSuccess, fmt.Sprintf("Report #%d submitted successfully!", res.ID("reportId")))
	c.submitForm = SubmitForm{}
	c.PopulateSubmitForm()
	c.ShowStudentView(ctx, ViewReports)
}
