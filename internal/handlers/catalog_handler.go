package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventbook/internal/helpers"
	"github.com/joshua-takyi/eventbook/internal/models"
	"github.com/joshua-takyi/eventbook/internal/services"
)

func ListVenues(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		attendees := c.Query("attendees")
		if attendees == "" {
			venues := cs.Venues()
			c.JSON(http.StatusOK, models.ListResponse(venues, len(venues)))
			return
		}

		n, err := strconv.Atoi(attendees)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid attendees parameter"))
			return
		}

		venues := cs.SuitableVenues(n)
		c.JSON(http.StatusOK, models.ListResponse(venues, len(venues)))
	}
}

func GetVenue(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID := helpers.StringTrim(c.Param("id"))
		if venueID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("venue ID is required"))
			return
		}

		venue, ok := cs.VenueByID(venueID)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse("venue not found"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

func ListServices(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := models.ServiceCategory(c.Query("category"))
		list := cs.ServicesByCategory(category)
		c.JSON(http.StatusOK, models.ListResponse(list, len(list)))
	}
}

func GetService(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceID := helpers.StringTrim(c.Param("id"))
		if serviceID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("service ID is required"))
			return
		}

		svc, ok := cs.ServiceByID(serviceID)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse("service not found"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(svc, ""))
	}
}

func ListOptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"eventTypes":   models.EventTypeOptions,
			"budgetRanges": models.BudgetRangeOptions,
		}, ""))
	}
}
