package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/models"
	"github.com/sefazor/mygallery-backend/internal/service"
)

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// currentUserID is the id the auth middleware stored for this request.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok && userID != 0
}

// requireOwner answers 401 without a caller and 403 when the caller is not
// ownerID. It returns false once a response has been written.
func requireOwner(c *fiber.Ctx, ownerID uint) (bool, error) {
	callerID, ok := currentUserID(c)
	if !ok {
		return false, c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(msgNoUser))
	}
	if callerID != ownerID {
		return false, c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(service.ErrNotOwner.Error()))
	}
	return true, nil
}
