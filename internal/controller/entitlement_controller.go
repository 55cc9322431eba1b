// FILE: internal/controller/entitlement_controller.go
// Controller for entitlement checks, grants and the feature catalog
package controller

import (
	"roomlink-be/internal/dto"
	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
	"roomlink-be/internal/pkg/serverutils"
	"roomlink-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEntitlementController interface {
	RegisterRoutes(api fiber.Router)
}

type entitlementController struct {
	entitlementService service.IEntitlementService
	validate           *validator.Validate
}

func NewEntitlementController(entitlementService service.IEntitlementService) IEntitlementController {
	return &entitlementController{
		entitlementService: entitlementService,
		validate:           validator.New(),
	}
}

func (c *entitlementController) RegisterRoutes(api fiber.Router) {
	grp := api.Group("/entitlements", serverutils.JwtMiddleware)
	grp.Get("/check", c.CheckAccess)

	admin := grp.Group("", serverutils.AdminOnly)
	admin.Post("/grant", c.GrantAccess)
	admin.Patch("/:id/status", c.SetStatus)
	admin.Get("/user/:id", c.ListGrants)

	settings := api.Group("/feature-settings", serverutils.JwtMiddleware, serverutils.AdminOnly)
	settings.Get("/", c.ListFeatureSettings)
	settings.Put("/:name", c.UpsertFeatureSetting)
}

// CheckAccess returns the Locked/Unlocked verdict for a (user, feature) pair.
// A store failure is a 503, never a silent Locked: the UI fails closed but
// can tell the difference between "denied" and "try again".
// @Summary Check feature access
// @Tags Entitlements
// @Produce json
// @Success 200 {object} dto.AccessCheckResponse
// @Router /api/entitlements/check [get]
func (c *entitlementController) CheckAccess(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Query("user_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user_id"))
	}
	featureName := ctx.Query("feature")
	if featureName == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing feature"))
	}

	state, err := c.entitlementService.CheckAccess(ctx.Context(), userId, featureName)
	if err != nil {
		if apperror.IsStoreUnavailable(err) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, "Access check unavailable, try again"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Access checked", dto.AccessCheckResponse{
		UserId:      userId,
		FeatureName: featureName,
		Locked:      state == service.AccessLocked,
	}))
}

// GrantAccess issues a new time-bounded grant.
// @Summary Grant feature access
// @Tags Entitlements
// @Accept json
// @Produce json
// @Success 200 {object} dto.EntitlementResponse
// @Router /api/entitlements/grant [post]
func (c *entitlementController) GrantAccess(ctx *fiber.Ctx) error {
	var req dto.GrantAccessRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	grant, err := c.entitlementService.GrantAccess(ctx.Context(), &req)
	if err != nil {
		switch {
		case apperror.IsConfiguration(err):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
		case apperror.IsStoreUnavailable(err):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, "Store unavailable, try again"))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Access granted", toEntitlementResponse(grant)))
}

func (c *entitlementController) SetStatus(ctx *fiber.Ctx) error {
	entitlementId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid entitlement id"))
	}

	var req dto.SetEntitlementStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.entitlementService.SetStatus(ctx.Context(), entitlementId, entity.EntitlementStatus(req.Status)); err != nil {
		switch {
		case apperror.IsNotFound(err):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Entitlement not found"))
		case apperror.IsStoreUnavailable(err):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, "Store unavailable, try again"))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Status updated", nil))
}

func (c *entitlementController) ListGrants(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user id"))
	}

	grants, err := c.entitlementService.ListGrants(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	result := make([]dto.EntitlementResponse, 0, len(grants))
	for _, grant := range grants {
		result = append(result, toEntitlementResponse(grant))
	}
	return ctx.JSON(serverutils.SuccessResponse("Grants retrieved", result))
}

func (c *entitlementController) ListFeatureSettings(ctx *fiber.Ctx) error {
	settings, err := c.entitlementService.ListFeatureSettings(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	result := make([]dto.FeatureSettingResponse, 0, len(settings))
	for _, s := range settings {
		result = append(result, dto.FeatureSettingResponse{
			FeatureName:   s.FeatureName,
			IsLocked:      s.IsLocked,
			UnlockPrice:   s.UnlockPrice,
			DurationValue: s.DurationValue,
			DurationType:  string(s.DurationType),
		})
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature settings retrieved", result))
}

func (c *entitlementController) UpsertFeatureSetting(ctx *fiber.Ctx) error {
	featureName := ctx.Params("name")

	var req dto.UpsertFeatureSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	setting, err := c.entitlementService.UpsertFeatureSetting(ctx.Context(), featureName, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Feature setting saved", dto.FeatureSettingResponse{
		FeatureName:   setting.FeatureName,
		IsLocked:      setting.IsLocked,
		UnlockPrice:   setting.UnlockPrice,
		DurationValue: setting.DurationValue,
		DurationType:  string(setting.DurationType),
	}))
}

func toEntitlementResponse(grant *entity.Entitlement) dto.EntitlementResponse {
	return dto.EntitlementResponse{
		Id:          grant.Id,
		UserId:      grant.UserId,
		FeatureName: grant.FeatureName,
		PaidAt:      grant.PaidAt,
		ExpiresAt:   grant.ExpiresAt,
		Status:      string(grant.Status),
	}
}
