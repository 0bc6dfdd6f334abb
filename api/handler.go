package api

import (
	"github.com/gofiber/fiber/v2"

	"cpu-sim/config"
	"cpu-sim/internal/requests"
	"cpu-sim/internal/responses"
	"cpu-sim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	response, err := schedulers.ScheduleRoundRobin(request, s.timeQuantum(request))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	response, err := schedulers.ScheduleShortestRemainingTimeFirst(request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	response, err := schedulers.ScheduleMultilevelFeedbackQueue(request, s.levelsTimeQuantum(request))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return ctx.JSON(response)
}

// AllAlgorithms runs every policy on the same input and returns the
// responses side by side. Each run loads its own table, so the runs cannot
// influence each other.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}

	all := make(map[string]responses.ScheduleResponse, 4)
	fcfs, err := schedulers.ScheduleFirstComeFirstServe(request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	all["first_come_first_serve"] = fcfs

	rr, err := schedulers.ScheduleRoundRobin(request, s.timeQuantum(request))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	all["round_robin"] = rr

	srtf, err := schedulers.ScheduleShortestRemainingTimeFirst(request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	all["shortest_remaining_time_first"] = srtf

	mlfq, err := schedulers.ScheduleMultilevelFeedbackQueue(request, s.levelsTimeQuantum(request))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	all["multilevel_feedback_queue"] = mlfq

	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) levelsTimeQuantum(request *requests.ScheduleRequests) []int {
	if len(request.LevelsTimeQuantum) != 0 {
		return request.LevelsTimeQuantum
	}
	return s.config.MultilevelFeedbackQueueLevelsTimeQuantum
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
