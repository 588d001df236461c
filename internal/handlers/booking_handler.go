package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventbook/internal/helpers"
	"github.com/joshua-takyi/eventbook/internal/models"
	"github.com/joshua-takyi/eventbook/internal/services"
)

const submissionFailed = "submission failed, please try again"

type quoteResponse struct {
	services.Quote
	FormattedTotal string `json:"formattedTotal"`
}

type bookingResponse struct {
	*models.Booking
	FormattedTotal string `json:"formattedTotal"`
}

func newBookingResponse(b *models.Booking) bookingResponse {
	return bookingResponse{Booking: b, FormattedTotal: helpers.FormatCurrency(b.TotalEstimatedCost)}
}

func ValidatePersonalDetails(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details models.PersonalDetails
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if errs := bs.Validator().PersonalDetailsErrors(details); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse(errs))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "personal details are valid"))
	}
}

func ValidateEventDetails(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details models.EventDetails
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if errs := bs.Validator().EventDetailsErrors(details); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse(errs))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "event details are valid"))
	}
}

func QuoteBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		q := bs.Quote(req)
		c.JSON(http.StatusOK, models.SuccessResponse(quoteResponse{
			Quote:          q,
			FormattedTotal: helpers.FormatCurrency(q.Total),
		}, ""))
	}
}

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft services.BookingDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.Submit(c.Request.Context(), draft)
		if err != nil {
			var precondition *services.PreconditionError
			if errors.As(err, &precondition) {
				c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse(precondition.Fields))
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(submissionFailed))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(newBookingResponse(booking), "Booking submitted successfully"))
	}
}

func ListBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.DefaultQuery("status", services.StatusAll)
		if status != services.StatusAll && !models.BookingStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid status parameter"))
			return
		}

		bookings, err := bs.ListBookings(c.Request.Context(), services.BookingFilter{
			Query:  c.Query("q"),
			Status: status,
		})
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to load bookings"))
			return
		}

		out := make([]bookingResponse, 0, len(bookings))
		for _, b := range bookings {
			out = append(out, newBookingResponse(b))
		}
		c.JSON(http.StatusOK, models.ListResponse(out, len(out)))
	}
}

func GetBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("booking ID is required"))
			return
		}

		booking, err := bs.GetBooking(c.Request.Context(), id)
		if errors.Is(err, models.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
			return
		}
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to load booking"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(newBookingResponse(booking), ""))
	}
}

func BookingStats(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := bs.Stats(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to load bookings"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}
