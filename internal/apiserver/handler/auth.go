package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/dto"
	"github.com/luhambo/maintenance/internal/i18n"
	"github.com/luhambo/maintenance/pkg/metrics"
	"go.uber.org/zap"
)

// Auth handles registration and the two login flows.
// Credentials are compared as stored; no token is issued.
type Auth struct {
	db      database.Database
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewAuth(db database.Database, logger *zap.Logger, m *metrics.Metrics) *Auth {
	return &Auth{
		db:      db,
		logger:  logger.Named("auth"),
		metrics: m,
	}
}

// Register creates a student account
func (h *Auth) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrInvalidRequest)
		return
	}

	user := &database.User{
		FullName:     req.FullName,
		StudentNo:    req.StudentNo,
		Email:        req.Email,
		BuildingName: req.BuildingName,
		RoomNumber:   req.RoomNumber,
		Floor:        req.Floor,
		Password:     req.Password,
	}
	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		h.metrics.Registration(false)
		if errors.Is(err, database.ErrDuplicate) {
			i18n.RespondWithError(c, i18n.ErrDuplicateStudent)
			return
		}
		h.logger.Error("failed to create user", zap.String("student_no", req.StudentNo), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrDatabase)
		return
	}

	h.metrics.Registration(true)
	h.logger.Info("student registered", zap.Uint("user_id", user.ID), zap.String("student_no", user.StudentNo))
	i18n.Success(i18n.SuccessRegistration).With("userId", user.ID).Send(c)
}

// LoginStudent accepts either the student number or the email as identifier
func (h *Auth) LoginStudent(c *gin.Context) {
	var req dto.StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrInvalidRequest)
		return
	}

	user, err := h.db.FindStudent(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		h.metrics.Login(cnst.SenderStudent, false)
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrInvalidCredentials)
			return
		}
		h.logger.Error("failed to look up student", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrDatabase)
		return
	}

	h.metrics.Login(cnst.SenderStudent, true)
	i18n.OK().With("user", user).Send(c)
}

func (h *Auth) LoginAdmin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrInvalidRequest)
		return
	}

	admin, err := h.db.FindAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.Login(cnst.SenderAdmin, false)
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrInvalidAdminCredentials)
			return
		}
		h.logger.Error("failed to look up admin", zap.String("username", req.Username), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrDatabase)
		return
	}

	h.metrics.Login(cnst.SenderAdmin, true)
	i18n.OK().With("admin", admin).Send(c)
}
