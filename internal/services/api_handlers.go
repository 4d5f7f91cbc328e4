package services

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"imgproxy/internal/clients/provider"
	"imgproxy/internal/clients/registry"
	"imgproxy/types"
)

func (a *Api) Health() fiber.Handler {
	return func(ctx *fiber.Ctx) error {

		return ctx.Status(fiber.StatusOK).JSON(types.HealthResponse{
			Status:    fiber.StatusOK,
			TimeStamp: time.Now().Unix(),
		})
	}
}

// Generate is the single caller-facing operation: authenticate, validate,
// dispatch to the selected adapter, wrap the result. Each step fails before
// the next one spends anything; no upstream call happens until the caller is
// verified.
func (a *Api) Generate() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		logger := HttpLogger("generate", ctx)

		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			logger.Warn("missing bearer credential")
			return ctx.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Error: "missing bearer token",
			})
		}

		subject, err := a.verifier.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			logger.Warn("credential rejected", "err", err)
			return ctx.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Error: "invalid or expired token",
			})
		}

		var req types.GenerateRequest
		if err := ctx.BodyParser(&req); err != nil {
			logger.Warn("invalid body", "err", err)
			return ctx.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Error: "invalid request body",
			})
		}

		if req.Provider == "" || req.Prompt == "" {
			logger.Warn("missing required fields", "provider", req.Provider)
			return ctx.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Error: "provider and prompt are required",
			})
		}

		// Top-level hints first, then the open options map on top.
		opts := provider.Options{
			Model:  req.Model,
			Width:  req.Width,
			Height: req.Height,
			Steps:  req.Steps,
		}.WithOverrides(req.Options)

		images, err := a.registry.Dispatch(ctx.UserContext(), registry.ProviderID(req.Provider), req.Prompt, opts)
		if err != nil {
			if errors.Is(err, provider.ErrUnknownProvider) {
				logger.Warn("unknown provider", "provider", req.Provider)
				return ctx.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
					Error: err.Error(),
				})
			}

			logger.Error("generation failed", "provider", req.Provider, "uid", subject.UID, "err", err)
			return ctx.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Error: err.Error(),
			})
		}

		out := make([]types.GeneratedImage, 0, len(images))
		for _, img := range images {
			out = append(out, types.GeneratedImage{B64: img.B64, Mime: img.Mime})
		}

		logger.Info("generation completed", "provider", req.Provider, "uid", subject.UID, "images", len(out))
		return ctx.Status(fiber.StatusOK).JSON(types.GenerateResponse{
			Provider: req.Provider,
			Model:    opts.Model,
			Images:   out,
			Meta: types.Meta{
				Uid:       subject.UID,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		})
	}
}
