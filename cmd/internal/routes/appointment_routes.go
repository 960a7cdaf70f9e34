package routes

import (
	"net/http"
	"strconv"

	"eclat/cmd/internal/service"
	"eclat/cmd/internal/utils"
	"eclat/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	CreateAppointment(req *service.AppointmentRequest, clientID string) (*service.AppointmentResponse, apierror.ErrorResponse)
	GetAppointments(status, beauticianID, date string, page, limit int) (*service.AppointmentPage, apierror.ErrorResponse)
	GetMyAppointments(clientID string) ([]*service.AppointmentResponse, apierror.ErrorResponse)
	GetAppointment(id, requesterID string, isAdmin bool) (*service.AppointmentResponse, apierror.ErrorResponse)
	ChangeStatus(id, status string) (*service.AppointmentResponse, apierror.ErrorResponse)
	CancelAppointment(id, requesterID string, isAdmin bool) (*service.AppointmentResponse, apierror.ErrorResponse)
}

type AvailabilityService interface {
	ComputeAvailableSlots(date, beauticianID, serviceID string) (*service.AvailabilityResult, apierror.ErrorResponse)
}

type DefaultAppointmentRoute struct {
	AppointmentService  AppointmentService
	AvailabilityService AvailabilityService
}

func NewAppointmentDefault(apptService AppointmentService, availService AvailabilityService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService, AvailabilityService: availService}
}

// GetAvailability is public: clients browse free slots before signing in.
func (a *DefaultAppointmentRoute) GetAvailability(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return c.JSON(400, apierror.NewMissingParamError("date"))
	}
	beauticianID := c.QueryParam("beauticianId")
	if beauticianID == "" {
		return c.JSON(400, apierror.NewMissingParamError("beauticianId"))
	}

	result, apierr := a.AvailabilityService.ComputeAvailableSlots(date, beauticianID, c.QueryParam("serviceId"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": result.Slots}
	if result.Note != "" {
		resp["message"] = result.Note
	}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) GetMyAppointments(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	appts, apierr := a.AppointmentService.GetMyAppointments(data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "count": len(appts), "data": appts}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}
	if !data.IsAdmin() {
		return c.JSON(403, apierror.AdminOnlyError)
	}

	page, apierr := intQueryParam(c, "page", 1)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	limit, apierr := intQueryParam(c, "limit", 10)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	result, apierr := a.AppointmentService.GetAppointments(
		c.QueryParam("status"),
		c.QueryParam("beautician"),
		c.QueryParam("date"),
		page,
		limit,
	)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"success": true,
		"count":   len(result.Appointments),
		"total":   result.Total,
		"pagination": echo.Map{
			"page":  result.Page,
			"pages": result.Pages,
		},
		"data": result.Appointments,
	}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) GetAppointment(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	appt, apierr := a.AppointmentService.GetAppointment(c.Param("id"), data.Sub, data.IsAdmin())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": appt}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) CreateAppointment(c echo.Context) error {
	var req service.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	appt, apierr := a.AppointmentService.CreateAppointment(&req, data.Sub)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"success": true,
		"message": "Appointment created. A confirmation has been sent by email.",
		"data":    appt,
	}
	return c.JSON(http.StatusCreated, &resp)
}

func (a *DefaultAppointmentRoute) UpdateAppointmentStatus(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}
	if !data.IsAdmin() {
		return c.JSON(403, apierror.AdminOnlyError)
	}

	var req service.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.ChangeStatus(c.Param("id"), req.Status)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "message": "Appointment " + appt.Status, "data": appt}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) CancelAppointment(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	appt, apierr := a.AppointmentService.CancelAppointment(c.Param("id"), data.Sub, data.IsAdmin())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "message": "Appointment cancelled", "data": appt}
	return c.JSON(http.StatusOK, &resp)
}

func intQueryParam(c echo.Context, name string, fallback int) (int, apierror.ErrorResponse) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, apierror.NewInvalidParamTypeError(name, "positive integer")
	}
	return v, nil
}
