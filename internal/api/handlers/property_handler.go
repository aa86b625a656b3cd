package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	"github.com/dwellist/dwellist-backend/internal/logger"
	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/dwellist/dwellist-backend/internal/storage"
	"github.com/dwellist/dwellist-backend/internal/validator"
	"github.com/dwellist/dwellist-backend/internal/web"
	"github.com/labstack/echo/v4"
)

// PropertyHandler manages landlord listings and serves listing images
type PropertyHandler struct {
	properties repository.PropertyRepository
	images     storage.ImageStorage
	security   *logger.SecurityLogger
	logger     *slog.Logger
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(
	properties repository.PropertyRepository,
	images storage.ImageStorage,
	security *logger.SecurityLogger,
	log *slog.Logger,
) *PropertyHandler {
	return &PropertyHandler{
		properties: properties,
		images:     images,
		security:   security,
		logger:     log,
	}
}

// List handles GET /landlord-dashboard/properties
func (h *PropertyHandler) List(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	view := web.PropertiesView{}
	properties, err := h.properties.ListByLandlord(c.Request().Context(), principal.ID)
	if err != nil {
		h.logger.Error("failed to list landlord properties", slog.String("error", err.Error()))
	} else {
		view.Properties = properties
	}

	switch c.QueryParam("listing") {
	case "added":
		view.Success = "Listing added."
	case "invalid":
		view.Error = "Please provide an address, a positive price, and an image file if attaching one."
	case "failed":
		view.Error = "Could not save the listing. Please try again."
	}

	return c.Render(http.StatusOK, "properties.html", view)
}

// Create handles POST /landlord-dashboard/properties with an optional
// multipart image upload.
func (h *PropertyHandler) Create(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	address := strings.TrimSpace(c.FormValue("address"))
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if address == "" || err != nil {
		return c.Redirect(http.StatusFound, "/landlord-dashboard/properties?listing=invalid")
	}
	if err := validator.ValidatePrice(price); err != nil {
		return c.Redirect(http.StatusFound, "/landlord-dashboard/properties?listing=invalid")
	}
	bedrooms, _ := strconv.Atoi(c.FormValue("bedrooms"))
	bathrooms, _ := strconv.Atoi(c.FormValue("bathrooms"))

	property := &models.Property{
		LandlordID: principal.ID,
		Address:    address,
		Price:      price,
		Bedrooms:   bedrooms,
		Bathrooms:  bathrooms,
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		contentType, err := storage.ValidateImage(file.Filename, file.Size)
		if err != nil {
			h.security.BlockedImageUpload(c.RealIP(), file.Filename, err.Error())
			return c.Redirect(http.StatusFound, "/landlord-dashboard/properties?listing=invalid")
		}

		src, err := file.Open()
		if err != nil {
			h.logger.Error("failed to open uploaded image", slog.String("error", err.Error()))
			return c.Redirect(http.StatusFound, "/landlord-dashboard/properties?listing=failed")
		}
		defer src.Close()

		path, err := h.images.Save(validator.SanitizeFilename(file.Filename), src)
		if err != nil {
			if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrNotAnImage) {
				h.security.BlockedImageUpload(c.RealIP(), file.Filename, err.Error())
				return c.Redirect(http.StatusFound, "/landlord-dashboard/properties?listing=invalid")
			}
			h.logger.Error("failed to store listing image", slog.String("error", err.Error()))
			return c.Redirect(http.StatusFound, "/landlord-dashboard/properties?listing=failed")
		}
		property.ImagePath = path
		property.ImageContentType = contentType
	}

	if err := h.properties.Create(c.Request().Context(), property); err != nil {
		h.logger.Error("failed to create property",
			slog.Uint64("landlord_id", uint64(principal.ID)),
			slog.String("error", err.Error()))
		return c.Redirect(http.StatusFound, "/landlord-dashboard/properties?listing=failed")
	}

	return c.Redirect(http.StatusFound, "/landlord-dashboard/properties?listing=added")
}

// Image handles GET /properties/:id/image, streaming the stored listing
// photo. Listing photos are public alongside the listing itself.
func (h *PropertyHandler) Image(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	property, err := h.properties.GetByID(c.Request().Context(), uint(id))
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}
	if property.ImagePath == "" {
		return c.NoContent(http.StatusNotFound)
	}

	reader, err := h.images.Get(property.ImagePath)
	if err != nil {
		if errors.Is(err, storage.ErrPathTraversal) {
			h.security.PathTraversalAttempt(c.RealIP(), c.Path(), property.ImagePath)
		}
		return c.NoContent(http.StatusNotFound)
	}
	defer reader.Close()

	contentType := property.ImageContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.Stream(http.StatusOK, contentType, reader)
}
