package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cortefacil/corte-facil-api/internal/audit"
	"github.com/cortefacil/corte-facil-api/internal/config"
	"github.com/cortefacil/corte-facil-api/internal/handlers"
	infraRepo "github.com/cortefacil/corte-facil-api/internal/infra/repository"
	"github.com/cortefacil/corte-facil-api/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg, auditDispatcher, log)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, userRepo, auditDispatcher, log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/usuarios")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/cadastrar", authHandler.Register)
		api.POST("/cadastro", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/agendamentos", appointmentHandler.Create)
		api.GET("/agendamentos/:clienteId", appointmentHandler.ListByClient)
		api.PUT("/agendamentos/:agendamentoId/cancelar", appointmentHandler.Cancel)
		api.GET("/horarios-disponiveis", appointmentHandler.AvailableSlots)

		// ------------------------------
		// SESSION
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)
		}
	}
}
