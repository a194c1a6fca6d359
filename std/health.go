package std

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Checker 就绪检查项，返回的详情直接输出到 /health/ready
type Checker interface {
	Name() string
	Ready() (any, error)
}

type Health struct {
	started  time.Time
	checkers []Checker
}

func NewHealth(checkers ...Checker) *Health {
	return &Health{started: time.Now(), checkers: checkers}
}

func (my *Health) Base() string {
	return "/health"
}

func (my *Health) Init(r fiber.Router) {
	r.Get("/", my.Check)
	r.Get("/live", my.Liveness)
	r.Get("/ready", my.Readiness)
}

// Check 通用健康检查
func (my *Health) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

// Liveness 存活检查
func (my *Health) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
		"uptime": time.Since(my.started).Seconds(),
	})
}

// Readiness 就绪检查，任一检查项失败返回503
func (my *Health) Readiness(c *fiber.Ctx) error {
	status, code := "ready", fiber.StatusOK
	checks := fiber.Map{}
	for _, checker := range my.checkers {
		detail, err := checker.Ready()
		if err != nil {
			status, code = "not_ready", fiber.StatusServiceUnavailable
			checks[checker.Name()] = fiber.Map{"error": err.Error()}
			continue
		}
		checks[checker.Name()] = detail
	}
	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"timestamp": time.Now().Unix(),
		"checks":    checks,
	})
}
