package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Semua endpoint merender envelope yang sama:
//
//	{"status": "success"|"failed"|"error", "message": ..., "data": ...}
//
// "failed" = kesalahan klien (input buruk, not found, aturan bisnis),
// "error"  = kegagalan server. Detail internal tidak pernah bocor ke klien.

// ✅ Success Response tanpa custom code (default 200)
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return JsonSuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func JsonSuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(code).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonSuccessWithCode(c, fiber.StatusCreated, message, data)
}

// ✅ Failed = client-correctable (4xx)
func JsonFailed(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "failed",
		"message": message,
		"data":    fiber.Map{},
	})
}

// ✅ Error = server-side (5xx), pesan generik saja
func JsonServerError(c *fiber.Ctx, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "Internal server error"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    fiber.Map{},
	})
}

// ✅ Khusus error validasi (validator.v10) → failed/400
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonFailed(c, fiber.StatusBadRequest, "Invalid input")
	}
	parts := make([]string, 0, len(ve))
	for _, fieldErr := range ve {
		parts = append(parts, fieldErr.Field()+" is "+fieldErr.Tag())
	}
	return JsonFailed(c, fiber.StatusBadRequest, "Validation failed: "+strings.Join(parts, ", "))
}

// FromFiberError mengubah *fiber.Error (mis. dari middleware auth) menjadi
// envelope konsisten; selain itu fallback ke 500 generik.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		if fe.Code >= fiber.StatusInternalServerError {
			return JsonServerError(c, fe.Message)
		}
		return JsonFailed(c, fe.Code, fe.Message)
	}
	return JsonServerError(c, "Internal server error")
}
