package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cortefacil/corte-facil-api/internal/audit"
	domain "github.com/cortefacil/corte-facil-api/internal/domain/appointment"
	userdomain "github.com/cortefacil/corte-facil-api/internal/domain/user"
	"github.com/cortefacil/corte-facil-api/internal/dto"
	"github.com/cortefacil/corte-facil-api/internal/httperr"
	"github.com/cortefacil/corte-facil-api/internal/httpresp"
	"github.com/cortefacil/corte-facil-api/internal/models"
	"github.com/cortefacil/corte-facil-api/internal/timezone"
)

type AppointmentHandler struct {
	appointments domain.Repository
	users        userdomain.Repository
	audit        *audit.Dispatcher
	log          *zap.Logger
}

func NewAppointmentHandler(
	appointments domain.Repository,
	users userdomain.Repository,
	dispatcher *audit.Dispatcher,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		users:        users,
		audit:        dispatcher,
		log:          log,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID uint   `json:"clienteId"`
	BarberID *uint  `json:"barbeiroId"`
	Date     string `json:"data"`
	TimeSlot string `json:"horario"`
	Service  string `json:"servico"`
	Notes    string `json:"observacoes"`
}

type CancelAppointmentRequest struct {
	ClientID uint `json:"clienteId"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.ClientID == 0 || req.Date == "" || req.TimeSlot == "" || req.Service == "" {
		httperr.BadRequest(c, "missing_fields", "Todos os campos obrigatórios devem ser preenchidos.")
		return
	}

	client, err := h.users.FindByID(c.Request.Context(), req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		h.log.Error("create appointment: client lookup failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// A booking for earlier today is still valid; only dates strictly
	// before local midnight are rejected.
	if date.Before(timezone.Today()) {
		httperr.BadRequest(c, "past_date", "A data do agendamento deve ser hoje ou no futuro.")
		return
	}

	if !domain.IsValidSlot(req.TimeSlot) {
		httperr.BadRequest(c, "invalid_time_slot", "Horário inválido.")
		return
	}

	if !domain.IsValidService(req.Service) {
		httperr.BadRequest(c, "invalid_service", "Serviço inválido.")
		return
	}

	if len(req.Notes) > 500 {
		httperr.BadRequest(c, "notes_too_long", "Observações devem ter no máximo 500 caracteres.")
		return
	}

	dateStr := date.Format(timezone.DateLayout)

	if _, err := h.appointments.CheckAvailability(
		c.Request.Context(), dateStr, req.TimeSlot, req.BarberID,
	); err == nil {
		httperr.Conflict(c, "slot_taken", "Este horário já está ocupado.")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.log.Error("create appointment: availability check failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	ap := models.Appointment{
		ClientID:   client.ID,
		ClientName: client.Name,
		BarberID:   req.BarberID,
		BarberName: models.DefaultBarberName,
		Date:       dateStr,
		TimeSlot:   req.TimeSlot,
		Service:    req.Service,
		Status:     string(domain.InitialStatus()),
		Notes:      req.Notes,
		Price:      models.DefaultPrice,
	}

	if err := h.appointments.Create(c.Request.Context(), &ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			httperr.Conflict(c, "slot_taken", "Este horário já está ocupado.")
			return
		}
		h.log.Error("create appointment: insert failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &client.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.Created(c, gin.H{
		"mensagem":    "Agendamento criado com sucesso!",
		"agendamento": dto.FromAppointmentCreated(&ap),
	})
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("clienteId"), 10, 64)
	if err != nil || clientID == 0 {
		httperr.BadRequest(c, "missing_client_id", "ID do cliente é obrigatório.")
		return
	}

	aps, err := h.appointments.FindByClient(c.Request.Context(), uint(clientID))
	if err != nil {
		h.log.Error("list appointments: query failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	httpresp.OK(c, gin.H{"agendamentos": dto.FromAppointmentList(aps)})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("agendamentoId"), 10, 64)
	if err != nil || appointmentID == 0 {
		httperr.BadRequest(c, "missing_fields", "ID do agendamento e cliente são obrigatórios.")
		return
	}

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientID == 0 {
		httperr.BadRequest(c, "missing_fields", "ID do agendamento e cliente são obrigatórios.")
		return
	}

	ap, err := h.appointments.FindByID(c.Request.Context(), uint(appointmentID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		h.log.Error("cancel appointment: lookup failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	if ap.ClientID != req.ClientID {
		httperr.Forbidden(c, "not_owner", "Você não tem permissão para cancelar este agendamento.")
		return
	}

	if err := domain.Cancel(ap); err != nil {
		switch {
		case httperr.IsBusiness(err, "already_cancelled"):
			httperr.BadRequest(c, "already_cancelled", "Este agendamento já foi cancelado.")
		case httperr.IsBusiness(err, "already_completed"):
			httperr.BadRequest(c, "already_completed", "Não é possível cancelar um agendamento já concluído.")
		default:
			h.log.Error("cancel appointment: domain rule failed", zap.Error(err))
			httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		}
		return
	}

	if _, err := h.appointments.UpdateStatus(
		c.Request.Context(), ap.ID, domain.StatusCancelled,
	); err != nil {
		h.log.Error("cancel appointment: update failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &req.ClientID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, gin.H{"mensagem": "Agendamento cancelado com sucesso!"})
}

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("data")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data é obrigatória.")
		return
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	aps, err := h.appointments.FindByDate(
		c.Request.Context(), date.Format(timezone.DateLayout),
	)
	if err != nil {
		h.log.Error("available slots: query failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno do servidor. Tente novamente.")
		return
	}

	var occupied []string
	for _, ap := range aps {
		status := domain.Status(ap.Status)
		if status == domain.StatusScheduled || status == domain.StatusConfirmed {
			occupied = append(occupied, ap.TimeSlot)
		}
	}

	httpresp.OK(c, gin.H{"horariosDisponiveis": domain.FreeSlots(occupied)})
}
