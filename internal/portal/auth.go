package portal

import (
	"context"

	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/dto"
	"go.uber.org/zap"
)

// MinPasswordLength is checked before registration reaches the API
const MinPasswordLength = 6

// Login signs in as a student (identifier is student number or email)
// or as an admin (identifier is the username).
func (c *Controller) Login(ctx context.Context, kind, identifier, password string) {
	if kind == cnst.SenderAdmin {
		c.loginAdmin(ctx, identifier, password)
		return
	}

	res := c.client.LoginStudent(ctx, identifier, password)
	var st Student
	if !res.Success {
		c.notify(ToastError, orDefault(res.Message, "Invalid credentials"))
		return
	}
	if err := res.Decode("user", &st); err != nil {
		c.logger.Warn("failed to decode student", zap.Error(err))
		c.notify(ToastError, NetworkErrorMessage)
		return
	}

	c.session.signInStudent(&st)
	c.page = PageStudent
	c.dashboardView = ViewDashboard
	c.setText("student-welcome", "Welcome, "+st.FullName)
	c.updateStudentDashboard(ctx)
	c.notify(ToastSuccess, "Login successful!")
}

func (c *Controller) loginAdmin(ctx context.Context, username, password string) {
	res := c.client.LoginAdmin(ctx, username, password)
	var a Admin
	if !res.Success {
		c.notify(ToastError, orDefault(res.Message, "Invalid admin credentials"))
		return
	}
	if err := res.Decode("admin", &a); err != nil {
		c.logger.Warn("failed to decode admin", zap.Error(err))
		c.notify(ToastError, NetworkErrorMessage)
		return
	}

	c.session.signInAdmin(&a)
	c.page = PageAdmin
	c.dashboardView = ViewDashboard
	c.setText("admin-welcome", "Welcome, "+a.FullName)
	c.updateAdminDashboard(ctx)
	c.notify(ToastSuccess, "Admin login successful!")
}

// Register validates the form locally, then creates the account
func (c *Controller) Register(ctx context.Context, form RegisterForm) {
	if form.Password != form.ConfirmPassword {
		c.notify(ToastError, "Passwords do not match")
		return
	}
	if len(form.Password) < MinPasswordLength {
		c.notify(ToastError, "Password must be at least 6 characters long")
		return
	}

	res := c.client.Register(ctx, dto.RegisterRequest{
		FullName:     form.FullName,
		StudentNo:    form.StudentNo,
		Email:        form.Email,
		BuildingName: form.BuildingName,
		RoomNumber:   form.RoomNumber,
		Floor:        form.Floor,
		Password:     form.Password,
	})
	if !res.Success {
		c.notify(ToastError, orDefault(res.Message, "Registration failed"))
		return
	}

	c.notify(ToastSuccess, "Registration successful! Please login.")
	c.page = PageLogin
}

// Logout forgets the session and returns to the landing page
func (c *Controller) Logout() {
	c.session.clear()
	c.page = PageHome
	c.dashboardView = ""
	clear(c.modals)
	c.notify(ToastSuccess, "Logged out successfully")
}
