// FILE: internal/controller/broadcast_controller.go
// Controller for broadcast sends, queueing and the job history
package controller

import (
	"encoding/json"

	"roomlink-be/internal/dto"
	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
	"roomlink-be/internal/pkg/serverutils"
	"roomlink-be/internal/service"
	"roomlink-be/pkg/delivery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IBroadcastController interface {
	RegisterRoutes(api fiber.Router)
}

type broadcastController struct {
	broadcastService service.IBroadcastService
	publisherService service.IPublisherService
	validate         *validator.Validate
}

func NewBroadcastController(
	broadcastService service.IBroadcastService,
	publisherService service.IPublisherService,
) IBroadcastController {
	return &broadcastController{
		broadcastService: broadcastService,
		publisherService: publisherService,
		validate:         validator.New(),
	}
}

func (c *broadcastController) RegisterRoutes(api fiber.Router) {
	grp := api.Group("/broadcast", serverutils.JwtMiddleware, serverutils.AdminOnly)
	grp.Post("/send", c.Send)
	grp.Post("/queue", c.Queue)
	grp.Get("/jobs", c.ListJobs)
}

// Send accepts two body shapes on the same route. The historical variant
// carries explicit addresses in "to"; the audience variant carries
// "audience" and "channel". The presence of "to" decides which one runs.
// @Summary Send a broadcast
// @Tags Broadcast
// @Accept json
// @Produce json
// @Success 200 {object} dto.DeliveryReportResponse
// @Router /api/broadcast/send [post]
func (c *broadcastController) Send(ctx *fiber.Ctx) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(ctx.Body(), &probe); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if _, ok := probe["to"]; ok {
		return c.sendDirect(ctx)
	}
	return c.sendAudience(ctx)
}

func (c *broadcastController) sendDirect(ctx *fiber.Ctx) error {
	var req dto.DirectSendRequest
	if err := json.Unmarshal(ctx.Body(), &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if len(req.To) == 0 || req.Subject == "" || req.Body == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing to, subject or body"))
	}

	report, err := c.broadcastService.SendDirect(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Broadcast dispatched", toDeliveryReportResponse(report)))
}

func (c *broadcastController) sendAudience(ctx *fiber.Ctx) error {
	var req dto.BroadcastRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	report, err := c.broadcastService.Send(ctx.Context(), &req)
	if err != nil {
		switch {
		case apperror.IsInvalidAudience(err):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
		case apperror.IsStoreUnavailable(err):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, "Recipient store unavailable, try again"))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Broadcast dispatched", toDeliveryReportResponse(report)))
}

// Queue validates the request up front, then hands it to the background
// worker. Returns 202 with the queue message id.
func (c *broadcastController) Queue(ctx *fiber.Ctx) error {
	var req dto.BroadcastRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if _, err := delivery.ParseAudience(req.Audience); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}

	msgId, err := c.publisherService.QueueBroadcast(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Broadcast queued", dto.QueuedBroadcastResponse{
		JobId: msgId,
	}))
}

func (c *broadcastController) ListJobs(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)

	jobs, err := c.broadcastService.ListJobs(ctx.Context(), limit)
	if err != nil {
		if apperror.IsStoreUnavailable(err) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, "Store unavailable, try again"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	result := make([]dto.BroadcastJobResponse, 0, len(jobs))
	for _, job := range jobs {
		result = append(result, dto.BroadcastJobResponse{
			Id:           job.Id,
			Subject:      job.Subject,
			Channel:      string(job.Channel),
			Audience:     string(job.Audience),
			TargetCount:  job.TargetCount,
			SuccessCount: job.SuccessCount,
			FailedCount:  job.FailedCount,
			SentAt:       job.SentAt,
		})
	}
	return ctx.JSON(serverutils.SuccessResponse("Broadcast jobs retrieved", result))
}

func toDeliveryReportResponse(report *entity.DeliveryReport) dto.DeliveryReportResponse {
	failures := make([]dto.DeliveryFailureDetail, 0, len(report.Failures))
	for _, f := range report.Failures {
		failures = append(failures, dto.DeliveryFailureDetail{
			RecipientId: f.RecipientId,
			Reason:      f.Reason,
		})
	}
	return dto.DeliveryReportResponse{
		Success:  report.SuccessCount,
		Failed:   report.FailedCount,
		Total:    report.TotalCount,
		Failures: failures,
	}
}
