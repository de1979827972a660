package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/filter"
	"github.com/sefazor/mygallery-backend/internal/models"
	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context, spec filter.Spec) ([]models.User, error)
	Show(ctx context.Context, req models.ShowUserRequest) (*models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (*models.CreateUserResponse, error)
	Update(ctx context.Context, id uint, req models.UpdateUserRequest) (*models.User, error)
	Destroy(ctx context.Context, id uint) (*models.User, error)
}

type UserHandler struct {
	users UserService
	log   *zap.Logger
}

func NewUserHandler(users UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		users: users,
		log:   log,
	}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	spec, err := filter.Build(c.Queries(), filter.UserSchema)
	if err != nil {
		return respondError(c, h.log, err)
	}

	users, err := h.users.List(c.UserContext(), spec)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(users)
}

// Show looks a user up by email, checking the password when one is sent.
func (h *UserHandler) Show(c *fiber.Ctx) error {
	var req models.ShowUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	user, err := h.users.Show(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	user, err := h.users.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	if ok, err := requireOwner(c, id); !ok {
		return err
	}

	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	user, err := h.users.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Destroy(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	if ok, err := requireOwner(c, id); !ok {
		return err
	}

	user, err := h.users.Destroy(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(user)
}
