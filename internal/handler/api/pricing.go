package api

import (
	"errors"
	"net/http"

	reqdto "tripdesk/internal/handler/dto/request"
	resdto "tripdesk/internal/handler/dto/response"
	"tripdesk/internal/handler/httperr"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingQueries: pricingQueries,
	}
}

// @Summary Calculate package price
// @Description Price one package stay for a party on a given date
// @Tags pricing
// @Produce json
// @Param package_id query string true "Package ID"
// @Param date query string true "Stay start date (YYYY-MM-DD)"
// @Param nights query int false "Stay length in nights (default 7)"
// @Param adults query int true "Number of adults"
// @Param child_ages query string false "Comma-separated child ages"
// @Param room_type_id query string false "Room type ID (auto-selected when omitted)"
// @Param meal_plan query string false "Meal plan code (nd, bb, hb, fb, ai)"
// @Param supplement_ids query string false "Comma-separated optional supplement IDs"
// @Success 200 {object} resdto.PriceResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/public/packages/calculate-price [get]
func (h *PricingHandler) CalculatePrice(c *gin.Context) {
	var query reqdto.CalculatePriceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	packageID, quoteReq, err := query.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.pricingQueries.QuotePackage(c.Request.Context(), packageID, quoteReq)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceResult(packageID, result))
}

// @Summary Calculate listing prices
// @Description Price several packages for one shared party
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.ListingPricesRequest true "Listing price request"
// @Success 200 {object} resdto.ListingPricesResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/public/packages/prices [post]
func (h *PricingHandler) ListingPrices(c *gin.Context) {
	var req reqdto.ListingPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	packageIDs, date, nights, party, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	results, err := h.pricingQueries.QuoteListing(c.Request.Context(), packageIDs, queries.ListingRequest{
		Date:   date,
		Nights: nights,
		Party:  party,
	})
	if err != nil {
		if errors.Is(err, errs.ErrEmptyPackageList) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No package ids supplied", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingResults(results))
}

// @Summary Create staff quote
// @Description Price one package stay via the internal quoting tool
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StaffQuoteRequest true "Quote request"
// @Success 200 {object} resdto.PriceResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 500 {object} httperr.Response
// @Router /api/staff/quotes [post]
func (h *PricingHandler) StaffQuote(c *gin.Context) {
	var req reqdto.StaffQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	packageID, quoteReq, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.pricingQueries.QuotePackage(c.Request.Context(), packageID, quoteReq)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceResult(packageID, result))
}
