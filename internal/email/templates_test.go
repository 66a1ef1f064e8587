package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContractorNotification(t *testing.T) {
	rendered, err := RenderContractorNotification(NotificationData{
		HomeownerName:      "Jane Doe",
		Email:              "jane@example.com",
		Phone:              "(555) 111-2222",
		ProjectType:        "Deck Addition",
		ProjectDescription: "Cedar deck off the back porch",
		Timeline:           "1-3 months",
		Budget:             "$5,000 - $15,000",
		City:               "Austin, TX",
		ContractorName:     "Deck Experts",
		ContractorEmail:    "leads@deckexperts.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "New Deck Addition Lead in Austin, TX - Jane Doe", rendered.Subject)
	assert.Contains(t, rendered.HTML, "Jane Doe")
	assert.Contains(t, rendered.HTML, "jane@example.com")
	assert.Contains(t, rendered.HTML, "(555) 111-2222")
	assert.Contains(t, rendered.HTML, "Cedar deck off the back porch")
	assert.Contains(t, rendered.HTML, "deck addition help")
	assert.Contains(t, rendered.Text, "Homeowner: Jane Doe")
	assert.Contains(t, rendered.Text, "Budget: $5,000 - $15,000")
}

func TestRenderContractorNotificationOmitsEmptyPhone(t *testing.T) {
	rendered, err := RenderContractorNotification(NotificationData{
		HomeownerName: "Jane Doe",
		Email:         "jane@example.com",
		ProjectType:   "Deck Addition",
		City:          "Austin, TX",
	})
	require.NoError(t, err)

	assert.NotContains(t, rendered.HTML, "Phone:")
	assert.NotContains(t, rendered.Text, "Phone:")
}

func TestRenderConfirmation(t *testing.T) {
	rendered, err := RenderConfirmation(ConfirmationData{
		HomeownerName: "Jane",
		ProjectType:   "Kitchen Remodel",
		City:          "Austin, TX",
		SubmittedAt:   "9/1/2026, 10:30:00 AM",
	})
	require.NoError(t, err)

	assert.Equal(t, "Your Kitchen Remodel contractor request has been submitted", rendered.Subject)
	assert.Contains(t, rendered.HTML, "Hi Jane!")
	assert.Contains(t, rendered.HTML, "kitchen remodel")
	assert.Contains(t, rendered.HTML, "9/1/2026, 10:30:00 AM")
	assert.Contains(t, rendered.Text, "Submitted: 9/1/2026, 10:30:00 AM")
	assert.Contains(t, rendered.Text, "Up to 4 pre-screened contractors")
}

func TestRenderEscapesHTMLInUserContent(t *testing.T) {
	rendered, err := RenderContractorNotification(NotificationData{
		HomeownerName:      "Jane <script>alert(1)</script>",
		Email:              "jane@example.com",
		ProjectType:        "Deck Addition",
		ProjectDescription: "<b>bold</b>",
		City:               "Austin, TX",
	})
	require.NoError(t, err)

	assert.NotContains(t, rendered.HTML, "<script>")
	assert.NotContains(t, rendered.HTML, "<b>bold</b>")
}
