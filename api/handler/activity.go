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
	activityUC "github.com/routinely/backend/usecase/activity"
)

type ActivityHandler struct {
	baseHandler
	uc  *activityUC.UseCase
	loc *time.Location
}

func NewActivityHandler(uc *activityUC.UseCase, loc *time.Location, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		loc:         loc,
	}
}

// @Summary List activities
// @Tags activities
// @Router /api/v1/activities [get]
func (h *ActivityHandler) List(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	filter := repository.ActivityFilter{
		UserID:    userID,
		Frequency: domain.Frequency(ctx.QueryArgs().Peek("frequency")),
		Category:  string(ctx.QueryArgs().Peek("category")),
	}
	if filter.Frequency != "" && !filter.Frequency.Valid() {
		h.respondInvalid(ctx, "invalid frequency")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activities, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activities)
}

// @Summary Activities grouped by frequency
// @Tags activities
// @Router /api/v1/activities/grouped [get]
func (h *ActivityHandler) Grouped(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	grouped, err := h.uc.GroupedByFrequency(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, grouped)
}

// @Summary Distinct activity categories
// @Tags activities
// @Router /api/v1/activities/categories [get]
func (h *ActivityHandler) Categories(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	categories, err := h.uc.Categories(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, categories)
}

// @Summary Get a single activity
// @Tags activities
// @Router /api/v1/activities/{id} [get]
func (h *ActivityHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing activity id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activity, err := h.uc.Get(stdCtx, id, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activity)
}

// @Summary Create activity
// @Tags activities
// @Router /api/v1/activities [post]
func (h *ActivityHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	activity, ok := h.parseActivity(ctx, userID)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, activity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Replace activity
// @Tags activities
// @Router /api/v1/activities/{id} [put]
func (h *ActivityHandler) Update(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	activity, ok := h.parseActivity(ctx, userID)
	if !ok {
		return
	}
	if id, idOK := ctx.UserValue("id").(string); idOK {
		activity.ID = id
	}
	if activity.ID == "" {
		h.respondInvalid(ctx, "missing activity id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, activity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete activity
// @Tags activities
// @Router /api/v1/activities/{id} [delete]
func (h *ActivityHandler) Delete(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing activity id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id, userID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *ActivityHandler) parseActivity(ctx *fasthttp.RequestCtx, userID string) (*domain.Activity, bool) {
	var req transport.ActivityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}

	activity := &domain.Activity{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Frequency:   domain.Frequency(req.Frequency),
		Duration:    req.Duration,
	}
	if req.Category != "" {
		activity.Category = &req.Category
	}

	if req.StartDate != "" {
		start, err := parseDate(req.StartDate, h.loc)
		if err != nil {
			h.respondInvalid(ctx, "start_date must be YYYY-MM-DD")
			return nil, false
		}
		activity.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate, h.loc)
		if err != nil {
			h.respondInvalid(ctx, "end_date must be YYYY-MM-DD")
			return nil, false
		}
		activity.EndDate = &end
	}

	return activity, true
}
