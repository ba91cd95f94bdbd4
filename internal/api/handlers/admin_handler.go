package handlers

import (
	"family-foodie/domain"
	"family-foodie/internal/api/presenters"
	"family-foodie/pkg/admin"

	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetMigrationStatus(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
	}
)

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &adminHandler{
		adminService: adminService,
	}
}

func (h *adminHandler) GetMigrationStatus(c *fiber.Ctx) error {
	res, err := h.adminService.GetMigrationStatus(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMigrations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMigrations)
}
