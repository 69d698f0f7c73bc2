package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/josefdc/Algoritmos-Despacho/internal/assistant"
	"github.com/josefdc/Algoritmos-Despacho/internal/requests"
	"github.com/josefdc/Algoritmos-Despacho/internal/schedulers"
	"github.com/josefdc/Algoritmos-Despacho/internal/service"
	"github.com/josefdc/Algoritmos-Despacho/internal/store"
)

type SchedulerHandler interface {
	FirstInFirstOut(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	service *service.Service
}

func NewSchedulerHandlerImpl(service *service.Service) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{service: service}
}

func (s *SchedulerHandlerImpl) FirstInFirstOut(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstInFirstOut)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

// Simulate runs the policy named by the request algorithm field.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "")
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := s.service.Simulate(ctx.UserContext(), request, policy)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := s.service.SimulateAll(ctx.UserContext(), request)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Ask(ctx *fiber.Ctx) error {
	request := &requests.AskRequest{}
	if err := ctx.BodyParser(request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := s.service.Ask(ctx.UserContext(), request)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	runs, err := s.service.Store().List(ctx.UserContext())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(runs)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	run, err := s.service.Store().Load(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(run)
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, schedulers.ErrEmptyInput),
		errors.Is(err, schedulers.ErrInvalidProcess),
		errors.Is(err, schedulers.ErrUnknownPolicy),
		errors.Is(err, assistant.ErrEmptyQuestion):
		status = fiber.StatusBadRequest
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidID):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrAssistantDisabled), errors.Is(err, assistant.ErrMissingAPIKey):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, assistant.ErrUpstream):
		status = fiber.StatusBadGateway
		log.Printf("%s %s: assistant failed: %v", ctx.Method(), ctx.Path(), err)
	default:
		log.Printf("%s %s: %v", ctx.Method(), ctx.Path(), err)
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
