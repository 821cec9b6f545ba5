package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/routinely/backend/api/transport"
	"github.com/routinely/backend/domain"
	"github.com/routinely/backend/pkg/httpcontext"
	"github.com/routinely/backend/repository"
	logUC "github.com/routinely/backend/usecase/activitylog"
	"github.com/routinely/backend/usecase/generator"
)

type ActivityLogHandler struct {
	baseHandler
	uc  *logUC.UseCase
	gen *generator.Service
}

func NewActivityLogHandler(uc *logUC.UseCase, gen *generator.Service, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityLogHandler {
	return &ActivityLogHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		gen:         gen,
	}
}

// @Summary List activity logs
// @Tags activity-logs
// @Router /api/v1/activity-logs [get]
func (h *ActivityLogHandler) List(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	filter := repository.LogFilter{
		UserID:     userID,
		ActivityID: string(ctx.QueryArgs().Peek("activity_id")),
		Status:     domain.LogStatus(ctx.QueryArgs().Peek("status")),
		Order:      repository.OrderStartDesc,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		h.respondInvalid(ctx, "invalid status")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	logs, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, logs)
}

// @Summary Today view of activity logs
// @Tags activity-logs
// @Router /api/v1/activity-logs/today [get]
func (h *ActivityLogHandler) Today(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	logs, err := h.uc.TodayView(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, logs)
}

// @Summary Pending (not done) activity logs
// @Tags activity-logs
// @Router /api/v1/activity-logs/pending [get]
func (h *ActivityLogHandler) Pending(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	filter := repository.LogFilter{
		UserID: userID,
		Order:  repository.OrderEndAsc,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	logs, err := h.uc.Pending(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, logs)
}

// @Summary Get an activity log
// @Tags activity-logs
// @Router /api/v1/activity-logs/{id} [get]
func (h *ActivityLogHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing log id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	log, err := h.uc.Get(stdCtx, id, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, log)
}

// @Summary Create a manual activity log
// @Tags activity-logs
// @Router /api/v1/activity-logs [post]
func (h *ActivityLogHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.LogCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.ActivityID == "" {
		h.respondInvalid(ctx, "activity_id is required")
		return
	}

	cal := h.gen.Calendar()
	start, err := parseDate(req.StartDate, cal.Location())
	if err != nil {
		h.respondInvalid(ctx, "start_date must be YYYY-MM-DD")
		return
	}
	end := cal.DayBounds(start).End
	if req.EndDate != "" {
		parsed, perr := parseDate(req.EndDate, cal.Location())
		if perr != nil {
			h.respondInvalid(ctx, "end_date must be YYYY-MM-DD")
			return
		}
		end = cal.DayBounds(parsed).End
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, userID, req.ActivityID, start, end, domain.LogStatus(req.Status))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update activity log status
// @Tags activity-logs
// @Router /api/v1/activity-logs/{id}/status [patch]
func (h *ActivityLogHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing log id")
		return
	}

	var req transport.StatusUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Status == "" {
		h.respondInvalid(ctx, "status is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateStatus(stdCtx, id, userID, domain.LogStatus(req.Status))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Generate logs for a specific date
// @Tags activity-logs
// @Router /api/v1/activity-logs/generate [post]
func (h *ActivityLogHandler) Generate(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.GenerateRequest
	if len(ctx.PostBody()) > 0 {
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			h.respondInvalid(ctx, "invalid payload")
			return
		}
	}

	cal := h.gen.Calendar()
	date := cal.Today()
	if req.Date != "" {
		parsed, err := parseDate(req.Date, cal.Location())
		if err != nil {
			h.respondInvalid(ctx, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	h.generate(ctx, userID, date)
}

// @Summary Generate logs for today
// @Tags activity-logs
// @Router /api/v1/activity-logs/generate-today [post]
func (h *ActivityLogHandler) GenerateToday(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	h.generate(ctx, userID, h.gen.Calendar().Today())
}

func (h *ActivityLogHandler) generate(ctx *fasthttp.RequestCtx, userID string, date time.Time) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.gen.GenerateManual(stdCtx, userID, date)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, result)
}

// @Summary List comments on an activity log
// @Tags activity-logs
// @Router /api/v1/activity-logs/{id}/comments [get]
func (h *ActivityLogHandler) ListComments(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing log id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comments, err := h.uc.ListComments(stdCtx, id, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, comments)
}

// @Summary Add a comment to an activity log
// @Tags activity-logs
// @Router /api/v1/activity-logs/{id}/comments [post]
func (h *ActivityLogHandler) AddComment(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing log id")
		return
	}

	var req transport.CommentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comment, err := h.uc.AddComment(stdCtx, id, userID, req.Comment)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, comment)
}

// @Summary Delete a comment from an activity log
// @Tags activity-logs
// @Router /api/v1/activity-logs/{id}/comments/{commentId} [delete]
func (h *ActivityLogHandler) DeleteComment(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	commentID, _ := ctx.UserValue("commentId").(string)
	if id == "" || commentID == "" {
		h.respondInvalid(ctx, "missing log or comment id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteComment(stdCtx, id, userID, commentID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary List excluded intervals
// @Tags activity-logs
// @Router /api/v1/activity-logs/excluded-intervals [get]
func (h *ActivityLogHandler) ListExclusions(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	intervals, err := h.uc.ListExclusions(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, intervals)
}

// @Summary Add an excluded interval
// @Tags activity-logs
// @Router /api/v1/activity-logs/excluded-intervals [post]
func (h *ActivityLogHandler) AddExclusion(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ExcludedIntervalRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	interval := &domain.ExcludedInterval{
		UserID:    userID,
		Frequency: domain.Frequency(req.Frequency),
		Type:      domain.IntervalType(req.Type),
		Value:     req.Value,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddExclusion(stdCtx, interval)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Delete an excluded interval
// @Tags activity-logs
// @Router /api/v1/activity-logs/excluded-intervals/{id} [delete]
func (h *ActivityLogHandler) DeleteExclusion(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing interval id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteExclusion(stdCtx, id, userID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
