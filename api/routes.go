package api

import "github.com/gofiber/fiber/v2"

// Register mounts the scheduler routes under /api/v1.
func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fifo", handler.FirstInFirstOut)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/ask", handler.Ask)
		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
	}
}
