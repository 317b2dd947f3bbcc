package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"printshop/internal/app/dto"

	"github.com/gin-gonic/gin"
)

const (
	whatsAppNumber = "919311244099"
	contactEmail   = "services@dcprintingpress.com"
)

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes s the way encodeURIComponent does.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

func contactLinks(req dto.ContactRequest) dto.ContactResponse {
	text := fmt.Sprintf("New Contact Form Submission\n\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\nMessage:\n%s",
		req.Name, req.Email, req.Phone, req.Subject, req.Message)

	body := strings.Join([]string{
		"Name: " + encodeComponent(req.Name),
		"Email: " + encodeComponent(req.Email),
		"Phone: " + encodeComponent(req.Phone),
		"",
		"Message:",
		encodeComponent(req.Message),
	}, "%0D%0A")

	return dto.ContactResponse{
		WhatsAppURL: "https://wa.me/" + whatsAppNumber + "?text=" + encodeComponent(text),
		MailtoURL: "mailto:" + contactEmail +
			"?subject=" + encodeComponent("Contact Form: "+req.Subject) +
			"&body=" + strings.ReplaceAll(body, " ", "%20"),
	}
}

// Contact builds the WhatsApp and email links for a contact form message
// @Summary Contact links
// @Description Returns prefilled WhatsApp and mailto links; nothing is sent by the server
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Message"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/contact [post]
func (h *APIHandler) Contact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationResponse(c, bindingMessages(err))
		return
	}
	c.JSON(http.StatusOK, contactLinks(req))
}
