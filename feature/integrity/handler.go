package integrity

import (
	"chr-catalog/core/logger"
	"chr-catalog/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/tables", h.HandleTablesCheck)
	group.Get("/textures", h.HandleTexturesCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Tables, Textures, Schema). The texture check may take a long time.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	// Tables
	if missing, err := h.service.CheckTables(ctx); err != nil {
		report["tables"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["tables"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	// Textures (slow)
	if texReport, err := h.service.CheckTextures(ctx); err != nil {
		report["textures"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["textures"] = texReport
	}

	// Schema
	if schemaReport, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schemaReport
	}

	return c.JSON(report)
}

// HandleTablesCheck verifies the dataset tables are present in the source.
// @Summary Check Dataset Tables
// @Description Verify that every customization table can be served by the configured dataset source.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Tables Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/tables [get]
func (h *Handler) HandleTablesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckTables(c.Context())
	if err != nil {
		l.Error("Table check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing dataset tables detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleTexturesCheck verifies catalog textures exist in storage.
// @Summary Check Texture Files
// @Description Verify that every texture file the customization catalog references exists in the storage bucket. This operation may take a long time.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.TextureReport "Texture Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/textures [get]
func (h *Handler) HandleTexturesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting texture integrity check")

	report, err := h.service.CheckTextures(c.Context())
	if err != nil {
		l.Error("Texture check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Texture check completed",
		zap.Int("expected", report.TotalExpected),
		zap.Int("found", report.TotalFound))

	return c.JSON(report)
}

// HandleSchemaCheck checks the hotfix mirror schema.
// @Summary Check Mirror Schema
// @Description Checks if the hotfix mirror database schema matches the dataset row models.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting mirror schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Mirror schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
