package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/tourism-platform/internal/api/metrics"
	"github.com/tripnest/tourism-platform/internal/core/ports"
)

// SearchHandler serves free-text search and owner listings.
type SearchHandler struct {
	search ports.SearchService
}

func NewSearchHandler(search ports.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// SearchActivities returns activities matching searchBy on name, location,
// tag type or category name.
//
// @Summary      Search activities
// @Tags         search
// @Produce      json
// @Param        searchBy  query     string  false  "Search term"
// @Success      200       {array}   domain.Activity
// @Failure      404       {object}  map[string]string
// @Router       /search-activities [get]
func (h *SearchHandler) SearchActivities(c echo.Context) error {
	out, err := h.search.SearchActivities(c.Request().Context(), c.QueryParam("searchBy"))
	if err != nil {
		return err
	}
	metrics.SearchResults.WithLabelValues("activity").Observe(float64(len(out)))
	if len(out) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no activities found")
	}
	return c.JSON(http.StatusOK, out)
}

// SearchItineraries returns itineraries matching searchBy on title,
// description or any of their activities.
//
// @Summary      Search itineraries
// @Tags         search
// @Produce      json
// @Param        searchBy  query     string  false  "Search term"
// @Success      200       {array}   domain.Itinerary
// @Failure      404       {object}  map[string]string
// @Router       /search-itineraries [get]
func (h *SearchHandler) SearchItineraries(c echo.Context) error {
	out, err := h.search.SearchItineraries(c.Request().Context(), c.QueryParam("searchBy"))
	if err != nil {
		return err
	}
	metrics.SearchResults.WithLabelValues("itinerary").Observe(float64(len(out)))
	if len(out) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no itineraries found")
	}
	return c.JSON(http.StatusOK, out)
}

// ListActivities lists all activities, or one advertiser's when
// advertiserId is given.
//
// @Summary      List activities
// @Tags         catalog
// @Produce      json
// @Param        advertiserId  query  string  false  "Owning advertiser id"
// @Success      200  {array}  domain.Activity
// @Router       /activities [get]
func (h *SearchHandler) ListActivities(c echo.Context) error {
	ctx := c.Request().Context()
	if owner := c.QueryParam("advertiserId"); owner != "" {
		out, err := h.search.ActivitiesByAdvertiser(ctx, owner)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, out)
	}

	out, err := h.search.SearchActivities(ctx, "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// ListItineraries lists all itineraries, or one tour guide's when
// tourGuideId is given.
//
// @Summary      List itineraries
// @Tags         catalog
// @Produce      json
// @Param        tourGuideId  query  string  false  "Owning tour guide id"
// @Success      200  {array}  domain.Itinerary
// @Router       /itineraries [get]
func (h *SearchHandler) ListItineraries(c echo.Context) error {
	ctx := c.Request().Context()
	if owner := c.QueryParam("tourGuideId"); owner != "" {
		out, err := h.search.ItinerariesByTourGuide(ctx, owner)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, out)
	}

	out, err := h.search.SearchItineraries(ctx, "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// MyActivities lists the activities owned by the signed-in advertiser.
//
// @Summary      My activities
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Activity
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /advertisers/me/activities [get]
func (h *SearchHandler) MyActivities(c echo.Context) error {
	accountID, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	out, err := h.search.ActivitiesByAdvertiser(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// MyItineraries lists the itineraries owned by the signed-in tour guide.
//
// @Summary      My itineraries
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Itinerary
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /tour-guides/me/itineraries [get]
func (h *SearchHandler) MyItineraries(c echo.Context) error {
	accountID, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	out, err := h.search.ItinerariesByTourGuide(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
