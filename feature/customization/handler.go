package customization

import (
	"errors"
	"strconv"

	"chr-catalog/core/logger"
	"chr-catalog/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for character customization.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the customization routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/customization")
	group.Get("/status", h.HandleStatus)
	group.Post("/reload", h.HandleReload)
	group.Get("/models", h.HandleListModels)
	group.Get("/models/:modelID/options", h.HandleListOptions)
	group.Get("/options/:optionID/choices", h.HandleListChoices)
	group.Get("/choices/:choiceID/geoset", h.HandleGetChoiceGeoset)
	group.Get("/meshes/:fileID", h.HandleGetMesh)
	group.Get("/meshes/:fileID/layers", h.HandleResolveLayers)
	group.Get("/meshes/:fileID/texture", h.HandleResolveTexture)
}

// respondError maps service errors onto HTTP statuses. Only unexpected
// failures are logged as errors; unavailable and not-found are routine.
func (h *Handler) respondError(c *fiber.Ctx, l *zap.Logger, message string, err error) error {
	switch {
	case errors.Is(err, ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		l.Error(message, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// HandleStatus reports whether the customization catalog is available.
// @Summary Get Customization Status
// @Description Report catalog availability, dataset source and build statistics.
// @Tags customization
// @Accept json
// @Produce json
// @Success 200 {object} models.StatusReport "Catalog Status"
// @Router /customization/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleReload rebuilds the catalog from the configured dataset source.
// @Summary Reload Customization Catalog
// @Description Rebuild the catalog from the dataset source and publish it.
// @Tags customization
// @Accept json
// @Produce json
// @Success 200 {object} models.StatusReport "Catalog Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /customization/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if err := h.service.Reload(c.Context()); err != nil {
		return h.respondError(c, l, "Catalog reload failed", err)
	}
	return c.JSON(h.service.Status())
}

// HandleListModels lists the customizable character models.
// @Summary List Customizable Models
// @Description List every character model the catalog can customize.
// @Tags customization
// @Accept json
// @Produce json
// @Success 200 {array} models.ModelInfo "Customizable Models"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /customization/models [get]
func (h *Handler) HandleListModels(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	result, err := h.service.Models()
	if err != nil {
		return h.respondError(c, l, "Model listing failed", err)
	}
	return c.JSON(result)
}

// HandleListOptions lists a model's customization options.
// @Summary List Model Options
// @Description List the customization options of a character model in authored order.
// @Tags customization
// @Accept json
// @Produce json
// @Param modelID path int true "Character Model ID"
// @Success 200 {array} models.OptionInfo "Customization Options"
// @Failure 400 {object} map[string]string "Invalid Model ID"
// @Failure 404 {object} map[string]string "Model Not Found"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /customization/models/{modelID}/options [get]
func (h *Handler) HandleListOptions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	modelID, err := c.ParamsInt("modelID")
	if err != nil {
		return badRequest(c, "invalid model id")
	}

	result, err := h.service.Options(modelID)
	if err != nil {
		return h.respondError(c, l, "Option listing failed", err)
	}
	return c.JSON(result)
}

// HandleListChoices lists an option's choices.
// @Summary List Option Choices
// @Description List the choices of a customization option in authored order.
// @Tags customization
// @Accept json
// @Produce json
// @Param optionID path int true "Customization Option ID"
// @Success 200 {array} models.ChoiceInfo "Option Choices"
// @Failure 400 {object} map[string]string "Invalid Option ID"
// @Failure 404 {object} map[string]string "Option Not Found"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /customization/options/{optionID}/choices [get]
func (h *Handler) HandleListChoices(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	optionID, err := c.ParamsInt("optionID")
	if err != nil {
		return badRequest(c, "invalid option id")
	}

	result, err := h.service.Choices(optionID)
	if err != nil {
		return h.respondError(c, l, "Choice listing failed", err)
	}
	return c.JSON(result)
}

// HandleGetChoiceGeoset resolves the geoset key a choice toggles.
// @Summary Get Choice Geoset
// @Description Resolve the encoded geoset key a customization choice toggles.
// @Tags customization
// @Accept json
// @Produce json
// @Param choiceID path int true "Customization Choice ID"
// @Success 200 {object} models.ChoiceGeoset "Choice Geoset"
// @Failure 400 {object} map[string]string "Invalid Choice ID"
// @Failure 404 {object} map[string]string "Choice Has No Geoset"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /customization/choices/{choiceID}/geoset [get]
func (h *Handler) HandleGetChoiceGeoset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	choiceID, err := c.ParamsInt("choiceID")
	if err != nil {
		return badRequest(c, "invalid choice id")
	}

	result, err := h.service.Geoset(choiceID)
	if err != nil {
		return h.respondError(c, l, "Geoset resolution failed", err)
	}
	return c.JSON(result)
}

// HandleGetMesh summarizes what the catalog knows about a mesh file.
// @Summary Get Mesh Info
// @Description Report whether a mesh file is customizable and which display variants it carries.
// @Tags customization
// @Accept json
// @Produce json
// @Param fileID path int true "Mesh File Data ID"
// @Success 200 {object} models.MeshInfo "Mesh Info"
// @Failure 400 {object} map[string]string "Invalid File ID"
// @Failure 404 {object} map[string]string "Mesh Not Found"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /customization/meshes/{fileID} [get]
func (h *Handler) HandleGetMesh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	fileID, err := c.ParamsInt("fileID")
	if err != nil {
		return badRequest(c, "invalid file id")
	}

	result, err := h.service.Mesh(fileID)
	if err != nil {
		return h.respondError(c, l, "Mesh lookup failed", err)
	}
	return c.JSON(result)
}

// HandleResolveLayers resolves the layer stack a choice paints onto a mesh.
// @Summary Resolve Skin Layers
// @Description Resolve the texture layers a customization choice paints onto a mesh's composite texture.
// @Tags customization
// @Accept json
// @Produce json
// @Param fileID path int true "Mesh File Data ID"
// @Param choice query int true "Customization Choice ID"
// @Success 200 {array} models.SkinMaterial "Resolved Layers"
// @Failure 400 {object} map[string]string "Invalid Parameters"
// @Failure 404 {object} map[string]string "Mesh Or Choice Not Resolvable"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /customization/meshes/{fileID}/layers [get]
func (h *Handler) HandleResolveLayers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	fileID, err := c.ParamsInt("fileID")
	if err != nil {
		return badRequest(c, "invalid file id")
	}
	choiceID, err := strconv.Atoi(c.Query("choice"))
	if err != nil {
		return badRequest(c, "invalid or missing choice id")
	}

	result, err := h.service.SkinLayers(fileID, choiceID)
	if err != nil {
		return h.respondError(c, l, "Layer resolution failed", err)
	}
	return c.JSON(result)
}

// HandleResolveTexture picks the texture a choice applies to a mesh given the
// caller's current selections.
// @Summary Resolve Choice Texture
// @Description Resolve the texture a customization choice applies to a mesh, disambiguated by the caller's current selections.
// @Tags customization
// @Accept json
// @Produce json
// @Param fileID path int true "Mesh File Data ID"
// @Param choice query int true "Customization Choice ID"
// @Param selections query string false "Comma Separated Choice IDs Currently Applied"
// @Success 200 {object} models.ChoiceTexture "Resolved Texture"
// @Failure 400 {object} map[string]string "Invalid Parameters"
// @Failure 404 {object} map[string]string "Mesh Or Choice Not Resolvable"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /customization/meshes/{fileID}/texture [get]
func (h *Handler) HandleResolveTexture(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	fileID, err := c.ParamsInt("fileID")
	if err != nil {
		return badRequest(c, "invalid file id")
	}
	choiceID, err := strconv.Atoi(c.Query("choice"))
	if err != nil {
		return badRequest(c, "invalid or missing choice id")
	}
	selections, err := utils.ParseIDList(c.Query("selections"))
	if err != nil {
		return badRequest(c, "invalid selections list")
	}

	result, err := h.service.ResolveTexture(fileID, choiceID, selections)
	if err != nil {
		return h.respondError(c, l, "Texture resolution failed", err)
	}
	return c.JSON(result)
}
