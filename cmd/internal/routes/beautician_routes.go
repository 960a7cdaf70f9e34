package routes

import (
	"net/http"

	"eclat/cmd/internal/domain/entity"
	"eclat/cmd/internal/service"
	"eclat/cmd/internal/utils"
	"eclat/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type BeauticianService interface {
	GetBeauticians() ([]*service.BeauticianResponse, apierror.ErrorResponse)
	GetBeautician(id string) (*service.BeauticianResponse, apierror.ErrorResponse)
	CreateBeautician(req *service.BeauticianRequest) (*service.BeauticianResponse, apierror.ErrorResponse)
	UpdateWorkingHours(id string, hours *entity.WeekHours) (*service.BeauticianResponse, apierror.ErrorResponse)
}

type DefaultBeauticianRoute struct {
	BeauticianService BeauticianService
}

func NewBeauticianDefault(beauticianService BeauticianService) *DefaultBeauticianRoute {
	return &DefaultBeauticianRoute{BeauticianService: beauticianService}
}

func (b *DefaultBeauticianRoute) GetBeauticians(c echo.Context) error {
	beauticians, apierr := b.BeauticianService.GetBeauticians()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "count": len(beauticians), "data": beauticians}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBeauticianRoute) GetBeautician(c echo.Context) error {
	beautician, apierr := b.BeauticianService.GetBeautician(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": beautician}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBeauticianRoute) CreateBeautician(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}
	if !data.IsAdmin() {
		return c.JSON(403, apierror.AdminOnlyError)
	}

	var req service.BeauticianRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	beautician, apierr := b.BeauticianService.CreateBeautician(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": beautician}
	return c.JSON(http.StatusCreated, &resp)
}

func (b *DefaultBeauticianRoute) UpdateWorkingHours(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}
	if !data.IsAdmin() {
		return c.JSON(403, apierror.AdminOnlyError)
	}

	var hours entity.WeekHours
	if err := c.Bind(&hours); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	beautician, apierr := b.BeauticianService.UpdateWorkingHours(c.Param("id"), &hours)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": beautician}
	return c.JSON(http.StatusOK, &resp)
}
