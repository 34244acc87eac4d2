package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/gymtracker/internal/gymstats/stats"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service calls and formats the results.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

type ListExercisesInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter by category (chest, back, legs, shoulders, arms, core, cardio)"`
}

func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, ListExercisesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListExercisesInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListExercises(ctx, in.Category)
		if err != nil {
			return errorResult("Error listing exercises: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

type ListWorkoutsInput struct {
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD), inclusive"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), inclusive"`
}

func (h *Handler) ListWorkoutsTool() func(context.Context, *mcp.CallToolRequest, ListWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListWorkoutsInput) (*mcp.CallToolResult, any, error) {
		var from, to workouts.Date
		var err error
		if in.FromDate != "" {
			if from, err = workouts.ParseDate(in.FromDate); err != nil {
				return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
			}
		}
		if in.ToDate != "" {
			if to, err = workouts.ParseDate(in.ToDate); err != nil {
				return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
			}
		}

		list, err := h.service.ListWorkouts(ctx, from, to)
		if err != nil {
			return errorResult("Error listing workouts: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

type WorkoutStatsInput struct {
	WindowDays int    `json:"window_days,omitempty" jsonschema:"Window in days counted back from today (7, 30, 90, 365), defaults to 30"`
	ExerciseID string `json:"exercise_id,omitempty" jsonschema:"Only report this exercise id, defaults to all"`
}

func (h *Handler) WorkoutStatsTool() func(context.Context, *mcp.CallToolRequest, WorkoutStatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutStatsInput) (*mcp.CallToolResult, any, error) {
		window := in.WindowDays
		if window == 0 {
			window = stats.DefaultWindowDays
		}
		if err := stats.ValidateWindow(window); err != nil {
			return errorResult("Invalid window_days: " + err.Error()), nil, nil
		}
		filter := in.ExerciseID
		if filter == "" {
			filter = stats.AllExercises
		}

		report, err := h.service.WorkoutStats(ctx, window, filter)
		if err != nil {
			return errorResult("Error computing stats: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}
