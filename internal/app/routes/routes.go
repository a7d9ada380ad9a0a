package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/classware/studentms/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	healthController *controllers.HealthController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Health and info routes
	v1.GET("/health", healthController.Health)
	v1.GET("/info", healthController.Info)

	// Student routes
	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/active", studentController.GetActiveStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)

		// Status transition shortcuts
		students.PUT("/:id/suspend", studentController.SuspendStudent)
		students.PUT("/:id/activate", studentController.ActivateStudent)
		students.PUT("/:id/graduate", studentController.GraduateStudent)
	}
}
