package api

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

var _ SchedulerHandler = (*SchedulerHandlerImpl)(nil)

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	metrics *Metrics
	logger  *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, metrics *Metrics, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, metrics: metrics, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

// AllAlgorithms runs every scheduler on the same processes. The configured
// quantum is used for round-robin when the request has none.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx)
	if err != nil {
		return s.fail(ctx, "all", err)
	}
	processes, err := request.ToProcesses(false, s.config.MaxProcesses)
	if err != nil {
		return s.fail(ctx, "all", err)
	}
	quantum, err := request.TimeQuantum(s.config.RoundRobinTimeQuantum)
	if err != nil {
		return s.fail(ctx, "all", err)
	}

	result := make(map[string]responses.ScheduleResponse, len(schedulers.Algorithms))
	for _, algorithm := range schedulers.Algorithms {
		schedule, err := schedulers.Run(algorithm, processes, quantum)
		if err != nil {
			return s.fail(ctx, string(algorithm), err)
		}
		s.metrics.observe(string(algorithm), &schedule, nil)
		result[string(algorithm)] = responses.NewScheduleResponse(schedule)
	}

	s.logger.Info("scheduled", "algorithm", "all", "processes", len(processes), "quantum", quantum)
	return ctx.JSON(result)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parse(ctx)
	if err != nil {
		return s.fail(ctx, string(algorithm), err)
	}
	processes, err := request.ToProcesses(algorithm == schedulers.Priority, s.config.MaxProcesses)
	if err != nil {
		return s.fail(ctx, string(algorithm), err)
	}

	var quantum int
	if algorithm == schedulers.RoundRobin {
		if quantum, err = request.TimeQuantum(0); err != nil {
			return s.fail(ctx, string(algorithm), err)
		}
	}

	schedule, err := schedulers.Run(algorithm, processes, quantum)
	if err != nil {
		return s.fail(ctx, string(algorithm), err)
	}
	s.metrics.observe(string(algorithm), &schedule, nil)

	s.logger.Info("scheduled",
		"algorithm", algorithm,
		"processes", len(processes),
		"total_time", schedule.Cpu.TotalTime,
		"average_waiting_time", schedule.AverageWaitingTime)
	return ctx.JSON(responses.NewScheduleResponse(schedule))
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	request := new(requests.ScheduleRequest)
	if err := ctx.BodyParser(request); err != nil {
		return nil, fmt.Errorf("%w: invalid request format: %v", core.ErrInvalidInput, err)
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, algorithm string, err error) error {
	kind := core.Kind(err)
	s.logger.Warn("rejected request", "algorithm", algorithm, "kind", kind, "error", err)
	s.metrics.observe(algorithm, nil, err)
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{
		Error: err.Error(),
		Kind:  kind,
	})
}
