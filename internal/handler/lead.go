package handler

import (
	"fmt"
	"net/http"
	"strings"

	"propertyhub/internal/model"
	"propertyhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// LeadHandler handles lead form submissions
type LeadHandler struct {
	leads *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leads *service.LeadService) *LeadHandler {
	return &LeadHandler{
		leads: leads,
	}
}

// leadForm is a lead posted as an HTML form. Optional numbers and the consent
// checkbox arrive as text: a blank field means absent and a checked box sends "on".
type leadForm struct {
	Name           string `form:"name" binding:"required"`
	Phone          string `form:"phone" binding:"required"`
	Email          string `form:"email"`
	BuyOrRent      string `form:"buy_or_rent" binding:"required"`
	BudgetMax      string `form:"budget_max"`
	Beds           string `form:"beds"`
	Areas          string `form:"areas"`
	InterestIDs    string `form:"interest_ids"`
	ConsentContact string `form:"consent_contact"`
}

func (f leadForm) toRequest() (model.LeadRequest, error) {
	req := model.LeadRequest{
		Name:        f.Name,
		Phone:       f.Phone,
		Email:       f.Email,
		BuyOrRent:   f.BuyOrRent,
		Areas:       f.Areas,
		InterestIDs: f.InterestIDs,
	}

	budget, err := parseOptionalInt64(f.BudgetMax)
	if err != nil {
		return req, fmt.Errorf("budget_max %q is not a number", f.BudgetMax)
	}
	req.BudgetMax = budget

	beds, err := parseOptionalInt64(f.Beds)
	if err != nil {
		return req, fmt.Errorf("beds %q is not a number", f.Beds)
	}
	if beds != nil {
		n := int(*beds)
		req.Beds = &n
	}

	// An unchecked box is simply not sent.
	if strings.TrimSpace(f.ConsentContact) != "" {
		consent, ok := parseFlag(f.ConsentContact)
		if !ok {
			return req, fmt.Errorf("consent_contact %q is not a boolean", f.ConsentContact)
		}
		req.ConsentContact = consent
	}
	return req, nil
}

// bindLead reads a JSON body or a form post into a lead request
func bindLead(c *gin.Context) (model.LeadRequest, error) {
	if c.ContentType() == binding.MIMEJSON {
		var req model.LeadRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	}

	var form leadForm
	if err := c.ShouldBind(&form); err != nil {
		return model.LeadRequest{}, err
	}
	return form.toRequest()
}

// Submit handles POST /api/v1/leads
func (h *LeadHandler) Submit(c *gin.Context) {
	req, err := bindLead(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	lead, err := h.leads.Submit(c.Request.Context(), req, AttributionFromRequest(c))
	if err != nil {
		respondError(c, err, "save lead")
		return
	}

	c.JSON(http.StatusCreated, model.LeadResponse{
		ID:      lead.ID,
		Message: "Thanks! An agent will contact you shortly.",
	})
}
