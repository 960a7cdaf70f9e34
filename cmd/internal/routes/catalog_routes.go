package routes

import (
	"net/http"

	"eclat/cmd/internal/service"
	"eclat/cmd/internal/utils"
	"eclat/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	GetServices() ([]*service.ServiceResponse, apierror.ErrorResponse)
	GetService(id string) (*service.ServiceResponse, apierror.ErrorResponse)
	CreateService(req *service.ServiceRequest) (*service.ServiceResponse, apierror.ErrorResponse)
}

type DefaultCatalogRoute struct {
	CatalogService CatalogService
}

func NewCatalogDefault(catalogService CatalogService) *DefaultCatalogRoute {
	return &DefaultCatalogRoute{CatalogService: catalogService}
}

func (s *DefaultCatalogRoute) GetServices(c echo.Context) error {
	services, apierr := s.CatalogService.GetServices()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "count": len(services), "data": services}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultCatalogRoute) GetService(c echo.Context) error {
	svc, apierr := s.CatalogService.GetService(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": svc}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultCatalogRoute) CreateService(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}
	if !data.IsAdmin() {
		return c.JSON(403, apierror.AdminOnlyError)
	}

	var req service.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	svc, apierr := s.CatalogService.CreateService(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": svc}
	return c.JSON(http.StatusCreated, &resp)
}
