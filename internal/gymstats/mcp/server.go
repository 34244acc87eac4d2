package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the gymtracker MCP server. It is served over stdio by
// cmd/gymtracker_mcp and over HTTP at /mcp by the main service.
func NewServer(svc contextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymtracker",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymtracker_schema",
		Description: "Returns the DB schema of the workout tables (exercise, workout, workout_exercise): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the exercise catalog (id, name, category, muscle group, description). Optional filter: category.",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workouts",
		Description: "Returns logged workouts with their exercise lines (sets, reps, weight, rest time). Optional filters: from_date, to_date (YYYY-MM-DD).",
	}, h.ListWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_stats",
		Description: "Returns the stats report for a window of days: overall totals and per exercise volume, max weight and progression. Args: window_days (default 30), exercise_id (default all).",
	}, h.WorkoutStatsTool())

	return s
}
