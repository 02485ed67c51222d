package skins

import (
	"errors"
	"net/url"

	"skin-catalog/core/logger"
	"skin-catalog/core/models"
	"skin-catalog/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for skins.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the skins routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/skins")
	group.Get("/characters", h.HandleListCharacters)
	group.Get("/characters/:name", h.HandleGetCharacter)
	group.Get("/ids/:skin_id", h.HandleGetSkin)
	group.Get("/classify", h.HandleClassify)
	group.Post("/suggest", h.HandleSuggest)
	group.Post("/reconcile", h.HandleReconcile)
}

// HandleListCharacters returns every catalog character with its skin count.
func (h *Handler) HandleListCharacters(c *fiber.Ctx) error {
	chars, err := h.service.Characters(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(chars)
}

// HandleGetCharacter returns the known skins of one character.
func (h *Handler) HandleGetCharacter(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return badRequest(c, "invalid character name")
	}

	detail, err := h.service.Character(c.Context(), name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(detail)
}

// HandleGetSkin returns the catalog entry for a skin id.
func (h *Handler) HandleGetSkin(c *fiber.Ctx) error {
	entry, err := h.service.BySkinID(c.Context(), c.Params("skin_id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(entry)
}

// HandleClassify returns the tier and base of ?name=.
func (h *Handler) HandleClassify(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return badRequest(c, "name is required")
	}
	return c.JSON(h.service.Classify(name))
}

// HandleSuggest synthesizes the id a new skin would receive.
func (h *Handler) HandleSuggest(c *fiber.Ctx) error {
	var req SuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.SkinName == "" || (req.CharacterID == "" && req.Character == "") {
		return badRequest(c, "skin_name and character_id or character are required")
	}

	resp, err := h.service.Suggest(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(resp)
}

// HandleReconcile runs a dry reconciliation of the posted harvest.
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	var harvest []models.HarvestedSkin
	if err := c.BodyParser(&harvest); err != nil {
		return badRequest(c, "body must be a JSON array of harvested skins")
	}

	plan, err := h.service.Reconcile(c.Context(), harvest)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(plan)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrCharacterNotFound), errors.Is(err, ErrSkinNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrTierExhausted), errors.Is(err, reconcile.ErrInvalidCharacterID):
		status = fiber.StatusUnprocessableEntity
	}

	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Skins request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}
