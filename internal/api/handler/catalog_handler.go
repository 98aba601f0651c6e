package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/tourism-platform/internal/core/ports"
)

// CatalogHandler serves catalog writes and the tag and category
// vocabularies.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type createActivityRequest struct {
	Name             string    `json:"name" validate:"required"`
	Location         string    `json:"location" validate:"required"`
	Date             time.Time `json:"date" validate:"required"`
	Price            float64   `json:"price" validate:"gte=0"`
	SpecialDiscounts string    `json:"special_discounts"`
	BookingOpen      bool      `json:"booking_open"`
	Tags             []string  `json:"tags"`
	Categories       []string  `json:"categories"`
}

type createItineraryRequest struct {
	Title          string      `json:"title" validate:"required"`
	Description    string      `json:"description"`
	Language       string      `json:"language"`
	Price          float64     `json:"price" validate:"gte=0"`
	AvailableDates []time.Time `json:"available_dates"`
	Activities     []string    `json:"activities"`
}

type createTagRequest struct {
	Type   string `json:"type" validate:"required"`
	Period string `json:"period"`
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateActivity stores an activity owned by the signed-in advertiser.
//
// @Summary      Create activity
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      createActivityRequest  true  "Activity"
// @Success      201   {object}  domain.Activity
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /activities [post]
func (h *CatalogHandler) CreateActivity(c echo.Context) error {
	accountID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := h.catalog.CreateActivity(c.Request().Context(), ports.CreateActivityInput{
		AdvertiserID:     accountID,
		Name:             req.Name,
		Location:         req.Location,
		Date:             req.Date,
		Price:            req.Price,
		SpecialDiscounts: req.SpecialDiscounts,
		BookingOpen:      req.BookingOpen,
		TagIDs:           req.Tags,
		CategoryIDs:      req.Categories,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

// CreateItinerary stores an itinerary owned by the signed-in tour guide.
//
// @Summary      Create itinerary
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      createItineraryRequest  true  "Itinerary"
// @Success      201   {object}  domain.Itinerary
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /itineraries [post]
func (h *CatalogHandler) CreateItinerary(c echo.Context) error {
	accountID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createItineraryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := h.catalog.CreateItinerary(c.Request().Context(), ports.CreateItineraryInput{
		TourGuideID:    accountID,
		Title:          req.Title,
		Description:    req.Description,
		Language:       req.Language,
		Price:          req.Price,
		AvailableDates: req.AvailableDates,
		ActivityIDs:    req.Activities,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

// @Summary      Create tag
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      createTagRequest  true  "Tag"
// @Success      201   {object}  domain.Tag
// @Failure      400   {object}  map[string]string
// @Router       /tags [post]
func (h *CatalogHandler) CreateTag(c echo.Context) error {
	var req createTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := h.catalog.CreateTag(c.Request().Context(), req.Type, req.Period)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

// @Summary      List tags
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Tag
// @Router       /tags [get]
func (h *CatalogHandler) ListTags(c echo.Context) error {
	out, err := h.catalog.ListTags(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// @Summary      Create category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Router       /categories [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := h.catalog.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	out, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
