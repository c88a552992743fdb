package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/handler/http/dto"
	usecasecontract "coursehub/internal/usecase/contract"
)

// PurchaseHandler serves the checkout, webhook and purchase view routes.
type PurchaseHandler struct {
	purchaseUsecase usecasecontract.IPurchaseUseCase
}

func NewPurchaseHandler(purchaseUsecase usecasecontract.IPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{purchaseUsecase: purchaseUsecase}
}

// CreateCheckoutSession handles POST
// /purchase/checkout/create-checkout-session.
func (h *PurchaseHandler) CreateCheckoutSession(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	var req dto.CheckoutRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	url, err := h.purchaseUsecase.CreateCheckoutSession(c.Request.Context(), userID, req.CourseID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CheckoutEnvelope{Success: true, URL: url})
}

// Webhook handles POST /purchase/webhook. The raw body must reach the
// signature check unparsed; after the signature verifies, every outcome is
// acknowledged with 200 so the gateway does not retry no-ops.
func (h *PurchaseHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "failed to read webhook body")
		return
	}
	signature := c.GetHeader("Stripe-Signature")

	if err := h.purchaseUsecase.HandleWebhookEvent(c.Request.Context(), payload, signature); err != nil {
		if errors.Is(err, apperr.ErrSignature) {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
		return
	}
	MessageHandler(c, http.StatusOK, "Webhook received.")
}

// GetCourseDetailWithStatus handles GET
// /purchase/course/:courseId/detail-with-status.
func (h *PurchaseHandler) GetCourseDetailWithStatus(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	detail, purchased, err := h.purchaseUsecase.GetCourseDetailWithStatus(c.Request.Context(), userID, c.Param("courseId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseDetailEnvelope{
		Success:   true,
		Course:    detail,
		Purchased: purchased,
	})
}

// GetAllPurchasedCourses handles GET /purchase.
func (h *PurchaseHandler) GetAllPurchasedCourses(c *gin.Context) {
	purchases, err := h.purchaseUsecase.GetAllPurchasedCourses(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PurchasedCoursesEnvelope{
		Success:         true,
		PurchasedCourse: purchases,
	})
}
