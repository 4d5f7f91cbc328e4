package services

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"imgproxy/config"
	"imgproxy/internal/auth"
	"imgproxy/internal/clients/registry"
	"imgproxy/types"
)

type Api struct {
	server         *fiber.App
	registry       *registry.Registry
	verifier       auth.Verifier
	port           string
	allowedOrigins string
	rateLimit      config.RateLimitConfig
}

func NewApi(registry *registry.Registry, verifier auth.Verifier, config config.ApiConfig) *Api {
	if config.AllowedOrigins == "" {
		config.AllowedOrigins = "*"
	}
	if config.BodyLimitBytes == 0 {
		config.BodyLimitBytes = 2 << 20
	}
	if config.RateLimit.Max == 0 {
		config.RateLimit.Max = 8
	}
	if config.RateLimit.WindowSeconds == 0 {
		config.RateLimit.WindowSeconds = 10
	}

	return &Api{
		server: fiber.New(fiber.Config{
			// Oversized bodies are rejected here, before any handler runs.
			BodyLimit: config.BodyLimitBytes,
		}),
		registry:       registry,
		verifier:       verifier,
		port:           config.Port,
		allowedOrigins: config.AllowedOrigins,
		rateLimit:      config.RateLimit,
	}
}

func (a *Api) Start() {

	allowCredentials := a.allowedOrigins != "*"

	a.server.Use(cors.New(cors.Config{
		AllowOrigins:     a.allowedOrigins,
		AllowCredentials: allowCredentials,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization,Accept,Origin",
	}))

	a.server.Use(RequestLogger())

	a.addRoutes()

	log.Fatal(a.server.Listen(fmt.Sprint(":", a.port)))
}

func (a *Api) addRoutes() {
	a.server.Add("GET", "/health", a.Health())
	a.server.Add("POST", "/generate", a.throttle(), a.Generate())
}

func (a *Api) throttle() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        a.rateLimit.Max,
		Expiration: time.Duration(a.rateLimit.WindowSeconds) * time.Second,
		LimitReached: func(ctx *fiber.Ctx) error {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(types.ErrorResponse{
				Error: "rate limit exceeded",
			})
		},
	})
}
