package handler

import (
	"context"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/filter"
	"github.com/sefazor/mygallery-backend/internal/models"
	"go.uber.org/zap"
)

type PhotoService interface {
	List(ctx context.Context, userID uint, spec filter.Spec) ([]models.Photo, error)
	Show(ctx context.Context, userID, id uint) (*models.Photo, error)
	Create(ctx context.Context, req models.CreatePhotoRequest) (*models.CreatePhotoResponse, error)
	Update(ctx context.Context, ownerID, id uint, req models.UpdatePhotoRequest) (*models.Photo, error)
	Destroy(ctx context.Context, ownerID, id uint) (*models.Photo, error)
	DestroyAll(ctx context.Context, userID uint) (int64, error)
	Upload(ctx context.Context, userID uint, file *multipart.FileHeader) (*models.UploadResponse, error)
}

type PhotoHandler struct {
	photos PhotoService
	log    *zap.Logger
}

func NewPhotoHandler(photos PhotoService, log *zap.Logger) *PhotoHandler {
	return &PhotoHandler{
		photos: photos,
		log:    log,
	}
}

func (h *PhotoHandler) List(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userId")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}

	spec, err := filter.Build(c.Queries(), filter.PhotoSchema)
	if err != nil {
		return respondError(c, h.log, err)
	}

	photos, err := h.photos.List(c.UserContext(), userID, spec)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(photos)
}

func (h *PhotoHandler) Show(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userId")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid photo ID")
	}

	photo, err := h.photos.Show(c.UserContext(), userID, id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(photo)
}

func (h *PhotoHandler) Create(c *fiber.Ctx) error {
	var req models.CreatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgInvalidBody)
	}
	// Non-positive ids are left to validation.
	if req.UserID > 0 {
		if ok, err := requireOwner(c, uint(req.UserID)); !ok {
			return err
		}
	}

	photo, err := h.photos.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}

func (h *PhotoHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid photo ID")
	}
	callerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(msgNoUser))
	}

	var req models.UpdatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	photo, err := h.photos.Update(c.UserContext(), callerID, id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(photo)
}

func (h *PhotoHandler) Destroy(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid photo ID")
	}
	callerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(msgNoUser))
	}

	photo, err := h.photos.Destroy(c.UserContext(), callerID, id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(photo)
}

// DestroyAll answers 200 with an empty body.
func (h *PhotoHandler) DestroyAll(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userId")
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	if ok, err := requireOwner(c, userID); !ok {
		return err
	}

	if _, err := h.photos.DestroyAll(c.UserContext(), userID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).Send(nil)
}

// Upload stores the multipart "file" field for the authenticated user.
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(msgNoUser))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded")
	}

	resp, err := h.photos.Upload(c.UserContext(), userID, file)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
