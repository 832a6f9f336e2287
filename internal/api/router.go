package api

import (
	"campus-desk/docs"
	"campus-desk/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

func SetupRouter(
	studentHandler *handlers.StudentHandler,
	facultyHandler *handlers.FacultyHandler,
	complaintHandler *handlers.ComplaintHandler,
	assistantHandler *handlers.AssistantHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Root check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend server is running! The API is ready.")
	})

	api := app.Group("/api")

	api.Post("/register-student", studentHandler.Register)
	api.Post("/register-faculty", facultyHandler.Register)

	api.Post("/submit-complaint", complaintHandler.Submit)
	api.Get("/my-complaints/:student_id", complaintHandler.ListForStudent)

	faculty := api.Group("/faculty")
	faculty.Get("/complaints/:faculty_id", complaintHandler.ListForFaculty)
	faculty.Post("/reply", complaintHandler.Reply)
	faculty.Get("/profile/:user_id", facultyHandler.GetProfile)
	faculty.Put("/profile/:user_id", facultyHandler.UpdateProfile)

	student := api.Group("/student")
	student.Get("/profile/:user_id", studentHandler.GetProfile)
	student.Put("/profile/:user_id", studentHandler.UpdateProfile)

	api.Post("/ask-ai", assistantHandler.Ask)

	return app
}
