package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bundlepay/internal/models/request_models"
	"bundlepay/internal/services"
	"bundlepay/pkg/utils"
)

type CheckoutController struct {
	checkoutService services.CheckoutService
}

func NewCheckoutController(checkoutService services.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

// StartCheckout godoc
// @Summary Initiate a data-bundle checkout
// @Description Forwards the charge to the mobile-money gateway and records the transaction
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body request_models.StartCheckoutRequest true "Checkout Request"
// @Success 200 {object} utils.APIResponse
// @Router /api/start-checkout [post]
func (cc *CheckoutController) StartCheckout(c *gin.Context) {
	var request request_models.StartCheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing or invalid fields: phone, recipient, dataPlan, amount and network are required")
		return
	}

	resp, err := cc.checkoutService.StartCheckout(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, resp, "Checkout initiated")
}

// PaymentWebhook receives the gateway's asynchronous payment result. An
// unknown order id is acknowledged with 200 ok:false so the gateway stops
// retrying a callback we cannot reconcile.
func (cc *CheckoutController) PaymentWebhook(c *gin.Context) {
	var request request_models.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing fields: amount, status, transaction_id and phone_number are required")
		return
	}

	result, err := cc.checkoutService.HandleWebhook(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !result.Found {
		utils.RespondSoftFail(c, result.Message)
		return
	}

	utils.RespondOK(c, nil, result.Message)
}

// CheckStatus godoc
// @Summary Poll current transaction status
// @Tags Checkout
// @Produce json
// @Param transaction_id path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/check-status/{transaction_id} [get]
func (cc *CheckoutController) CheckStatus(c *gin.Context) {
	orderID := c.Param("transaction_id")
	if orderID == "" {
		utils.RespondError(c, http.StatusBadRequest, "transaction_id is required")
		return
	}

	resp, err := cc.checkoutService.CheckStatus(c.Request.Context(), orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, resp, "")
}

func (cc *CheckoutController) CancelTransaction(c *gin.Context) {
	orderID := c.Param("transaction_id")
	if orderID == "" {
		utils.RespondError(c, http.StatusBadRequest, "transaction_id is required")
		return
	}

	// Optional free-text annotation; body may be absent entirely.
	var body struct {
		Note string `json:"note"`
	}
	_ = c.ShouldBindJSON(&body)

	if err := cc.checkoutService.CancelTransaction(c.Request.Context(), orderID, body.Note); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, nil, "Transaction cancelled")
}
