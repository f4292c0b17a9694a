package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"liferpg/internal/app/action"
	"liferpg/internal/app/history"
	"liferpg/internal/app/ports"
	"liferpg/internal/app/rollover"
	"liferpg/internal/app/snapshot"
	"liferpg/internal/domain/hero"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// initDataHeader carries the opaque per-session identity token. Validating
// it against the platform is the deployment's concern; here it only has to
// be present and it keys the session.
const initDataHeader = "X-Telegram-Init-Data"

var ErrMissingInitData = errors.New("missing init data header")

type Handler struct {
	SnapshotUC snapshot.UseCase
	HistoryUC  history.UseCase
	ActionUC   action.UseCase
	RolloverUC rollover.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/hero", h.hero)
	api.GET("/history", h.history)
	api.POST("/water", h.water)
	api.POST("/sleep/start", h.sleepStart)
	api.POST("/sleep/end", h.sleepEnd)
	api.POST("/task/complete", h.taskComplete)
	api.POST("/shop/buy", h.shopBuy)
	api.POST("/bio/update", h.bioUpdate)
	api.POST("/habit/add", h.habitAdd)
	api.POST("/habit/edit", h.habitEdit)
	api.POST("/habit/delete", h.habitDelete)

	ops := s.Group("/ops")
	ops.POST("/rollover/day", h.rolloverDay)
	ops.POST("/rollover/month", h.rolloverMonth)
	ops.GET("/kpi", h.kpi)
}

type waterRequest struct {
	Amount int `json:"amount"`
}

type taskRequest struct {
	TaskID string `json:"task_id"`
}

type shopRequest struct {
	RewardID string `json:"reward_id"`
}

type bioRequest struct {
	Weight         float64 `json:"weight"`
	ActivityFactor float64 `json:"activity_factor"`
}

type habitAddRequest struct {
	Name     string `json:"name"`
	XP       int    `json:"xp"`
	Category string `json:"category"`
}

type habitEditRequest struct {
	HabitID string `json:"habit_id"`
	Name    string `json:"name"`
	XP      int    `json:"xp"`
}

type habitDeleteRequest struct {
	HabitID string `json:"habit_id"`
}

type rolloverDayRequest struct {
	UserID     string `json:"user_id"`
	MissedDays int    `json:"missed_days"`
}

type rolloverMonthRequest struct {
	UserID string `json:"user_id"`
}

func (h Handler) hero(c context.Context, ctx *app.RequestContext) {
	userID, err := requireIdentity(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	force := string(ctx.Query("force")) == "1"
	resp, err := h.SnapshotUC.Execute(c, snapshot.Request{UserID: userID, Force: force})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp.Hero)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	userID, err := requireIdentity(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	var before *time.Time
	if raw := string(ctx.Query("before")); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeDetail(ctx, consts.StatusBadRequest, "invalid before timestamp")
			return
		}
		before = &ts
	}
	resp, err := h.HistoryUC.Execute(c, history.Request{UserID: userID, Limit: limit, Before: before})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) water(c context.Context, ctx *app.RequestContext) {
	var body waterRequest
	h.runAction(c, ctx, &body, func() hero.Action {
		return hero.Action{Type: hero.ActionWater, Amount: body.Amount}
	}, func(resp action.Response) map[string]any {
		return map[string]any{
			"ok":        true,
			"xp_gained": resp.Delta.XPGained,
			"hp_gained": resp.Delta.HPGained,
			"hero":      resp.Hero,
		}
	})
}

func (h Handler) sleepStart(c context.Context, ctx *app.RequestContext) {
	h.runAction(c, ctx, nil, func() hero.Action {
		return hero.Action{Type: hero.ActionSleepStart}
	}, func(resp action.Response) map[string]any {
		return map[string]any{
			"ok":          true,
			"sleep_start": resp.Delta.SleepStart,
		}
	})
}

func (h Handler) sleepEnd(c context.Context, ctx *app.RequestContext) {
	h.runAction(c, ctx, nil, func() hero.Action {
		return hero.Action{Type: hero.ActionSleepEnd}
	}, func(resp action.Response) map[string]any {
		return map[string]any{
			"ok":             true,
			"xp_gained":      resp.Delta.XPGained,
			"hp_gained":      resp.Delta.HPGained,
			"duration_hours": resp.Delta.DurationHours,
			"message":        resp.Delta.Message,
			"hero":           resp.Hero,
		}
	})
}

func (h Handler) taskComplete(c context.Context, ctx *app.RequestContext) {
	var body taskRequest
	h.runAction(c, ctx, &body, func() hero.Action {
		return hero.Action{Type: hero.ActionTask, TaskID: body.TaskID}
	}, func(resp action.Response) map[string]any {
		return map[string]any{
			"ok":        true,
			"xp_gained": resp.Delta.XPGained,
			"hero":      resp.Hero,
		}
	})
}

func (h Handler) shopBuy(c context.Context, ctx *app.RequestContext) {
	var body shopRequest
	h.runAction(c, ctx, &body, func() hero.Action {
		return hero.Action{Type: hero.ActionBuyReward, RewardID: body.RewardID}
	}, func(resp action.Response) map[string]any {
		return map[string]any{
			"ok":        true,
			"purchased": resp.Delta.Purchased,
			"hero":      resp.Hero,
		}
	})
}

func (h Handler) bioUpdate(c context.Context, ctx *app.RequestContext) {
	var body bioRequest
	h.runAction(c, ctx, &body, func() hero.Action {
		return hero.Action{Type: hero.ActionBiometrics, Weight: body.Weight, ActivityFactor: body.ActivityFactor}
	}, func(resp action.Response) map[string]any {
		return map[string]any{
			"ok":         true,
			"water_goal": resp.Delta.WaterGoal,
			"hero":       resp.Hero,
		}
	})
}

func (h Handler) habitAdd(c context.Context, ctx *app.RequestContext) {
	var body habitAddRequest
	h.runAction(c, ctx, &body, func() hero.Action {
		return hero.Action{Type: hero.ActionHabitAdd, Name: body.Name, XP: body.XP, Category: body.Category}
	}, func(resp action.Response) map[string]any {
		return map[string]any{
			"ok":       true,
			"habit_id": resp.Delta.HabitID,
			"hero":     resp.Hero,
		}
	})
}

func (h Handler) habitEdit(c context.Context, ctx *app.RequestContext) {
	var body habitEditRequest
	h.runAction(c, ctx, &body, func() hero.Action {
		return hero.Action{Type: hero.ActionHabitEdit, HabitID: body.HabitID, Name: body.Name, XP: body.XP}
	}, func(resp action.Response) map[string]any {
		return map[string]any{"ok": true, "hero": resp.Hero}
	})
}

func (h Handler) habitDelete(c context.Context, ctx *app.RequestContext) {
	var body habitDeleteRequest
	h.runAction(c, ctx, &body, func() hero.Action {
		return hero.Action{Type: hero.ActionHabitDelete, HabitID: body.HabitID}
	}, func(resp action.Response) map[string]any {
		return map[string]any{"ok": true, "hero": resp.Hero}
	})
}

// runAction is the shared mutation path: identity, body decode, use case,
// and either the action-specific success body or the dropped no-op body.
func (h Handler) runAction(c context.Context, ctx *app.RequestContext, body any, toAction func() hero.Action, toBody func(action.Response) map[string]any) {
	userID, err := requireIdentity(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if body != nil {
		if err := decodeJSON(ctx, body); err != nil {
			writeDetail(ctx, consts.StatusBadRequest, "invalid json")
			return
		}
	}
	resp, err := h.ActionUC.Execute(c, action.Request{UserID: userID, Action: toAction()})
	if err != nil {
		writeError(ctx, err)
		return
	}
	if resp.Dropped {
		ctx.JSON(consts.StatusOK, map[string]any{"ok": false, "dropped": true})
		return
	}
	ctx.JSON(consts.StatusOK, toBody(resp))
}

func (h Handler) rolloverDay(c context.Context, ctx *app.RequestContext) {
	var body rolloverDayRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeDetail(ctx, consts.StatusBadRequest, "invalid json")
		return
	}
	resp, err := h.RolloverUC.RolloverDay(c, rollover.DayRequest{UserID: body.UserID, MissedDays: body.MissedDays})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"ok": true, "hero": resp.Hero})
}

func (h Handler) rolloverMonth(c context.Context, ctx *app.RequestContext) {
	var body rolloverMonthRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeDetail(ctx, consts.StatusBadRequest, "invalid json")
		return
	}
	resp, err := h.RolloverUC.RolloverMonth(c, rollover.MonthRequest{UserID: body.UserID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"ok": true, "hero": resp.Hero})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeDetail(ctx, consts.StatusNotFound, "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func requireIdentity(ctx *app.RequestContext) (string, error) {
	token := strings.TrimSpace(string(ctx.GetHeader(initDataHeader)))
	if token == "" {
		return "", ErrMissingInitData
	}
	return token, nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// writeError maps engine errors onto statuses. Error bodies are always
// {"detail": "..."}; unexpected failures never leak internals.
func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingInitData):
		writeDetail(ctx, consts.StatusUnauthorized, err.Error())
	case hero.IsValidation(err), hero.IsInsufficient(err):
		writeDetail(ctx, consts.StatusBadRequest, err.Error())
	case hero.IsConflict(err):
		writeDetail(ctx, consts.StatusConflict, err.Error())
	case hero.IsNotFound(err):
		writeDetail(ctx, consts.StatusNotFound, err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, snapshot.ErrInvalidRequest),
		errors.Is(err, history.ErrInvalidRequest),
		errors.Is(err, rollover.ErrInvalidRequest):
		writeDetail(ctx, consts.StatusBadRequest, err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeDetail(ctx, consts.StatusNotFound, err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeDetail(ctx, consts.StatusConflict, err.Error())
	default:
		writeDetail(ctx, consts.StatusInternalServerError, "internal error, try again")
	}
}

func writeDetail(ctx *app.RequestContext, status int, detail string) {
	ctx.JSON(status, map[string]string{"detail": detail})
}
