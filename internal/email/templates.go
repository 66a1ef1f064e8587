package email

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// NotificationData feeds the contractor-notification template.
type NotificationData struct {
	HomeownerName      string
	Email              string
	Phone              string
	ProjectType        string
	ProjectDescription string
	Timeline           string
	Budget             string
	City               string
	ContractorName     string
	ContractorEmail    string
}

// ConfirmationData feeds the homeowner-confirmation template.
type ConfirmationData struct {
	HomeownerName string
	ProjectType   string
	City          string
	SubmittedAt   string
}

// Rendered is a fully built email body pair plus subject, ready to hand
// to any provider.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

var templateFuncs = map[string]interface{}{
	"lower": strings.ToLower,
}

var notificationHTML = htmltemplate.Must(htmltemplate.New("notification").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Lead from TownKit</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #4f46e5; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9f9f9; }
    .lead-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .detail-row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #eee; }
    .detail-label { font-weight: bold; }
    .cta { background: #4f46e5; color: white; padding: 15px 30px; text-decoration: none; border-radius: 5px; display: inline-block; margin: 20px 0; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New Lead from TownKit</h1>
      <p>A homeowner in {{.City}} is looking for {{lower .ProjectType}} help</p>
    </div>

    <div class="content">
      <h2>Lead Details</h2>
      <div class="lead-details">
        <div class="detail-row">
          <span class="detail-label">Homeowner:</span>
          <span>{{.HomeownerName}}</span>
        </div>
        <div class="detail-row">
          <span class="detail-label">Email:</span>
          <span>{{.Email}}</span>
        </div>
        {{if .Phone}}
        <div class="detail-row">
          <span class="detail-label">Phone:</span>
          <span>{{.Phone}}</span>
        </div>
        {{end}}
        <div class="detail-row">
          <span class="detail-label">Project Type:</span>
          <span>{{.ProjectType}}</span>
        </div>
        <div class="detail-row">
          <span class="detail-label">Timeline:</span>
          <span>{{.Timeline}}</span>
        </div>
        <div class="detail-row">
          <span class="detail-label">Budget:</span>
          <span>{{.Budget}}</span>
        </div>
        <div class="detail-row">
          <span class="detail-label">Location:</span>
          <span>{{.City}}</span>
        </div>
      </div>

      <h3>Project Description</h3>
      <div class="lead-details">
        <p>{{.ProjectDescription}}</p>
      </div>

      <p><strong>Next Steps:</strong></p>
      <ol>
        <li>Contact the homeowner within 24 hours for best response rates</li>
        <li>Provide a detailed quote including permit handling if needed</li>
        <li>Follow up professionally and promptly</li>
      </ol>

      <a href="mailto:{{.Email}}?subject=Re: Your {{.ProjectType}} Project in {{.City}}" class="cta">Contact Homeowner</a>
    </div>

    <div class="footer">
      <p>This lead was generated through TownKit.com</p>
      <p>For support, contact us at support@townkit.com</p>
    </div>
  </div>
</body>
</html>
`))

var notificationText = texttemplate.Must(texttemplate.New("notification").Parse(`New Lead from TownKit

Homeowner: {{.HomeownerName}}
Email: {{.Email}}
{{if .Phone}}Phone: {{.Phone}}
{{end}}Project Type: {{.ProjectType}}
Timeline: {{.Timeline}}
Budget: {{.Budget}}
Location: {{.City}}

Project Description:
{{.ProjectDescription}}

Next Steps:
1. Contact the homeowner within 24 hours for best response rates
2. Provide a detailed quote including permit handling if needed
3. Follow up professionally and promptly

Reply to this email to contact the homeowner directly.

This lead was generated through TownKit.com
For support, contact us at support@townkit.com
`))

var confirmationHTML = htmltemplate.Must(htmltemplate.New("confirmation").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Contractor Request Confirmed</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #10b981; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9f9f9; }
    .info-box { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .steps { background: #eff6ff; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>&#10003; Request Submitted Successfully</h1>
      <p>We're finding {{lower .ProjectType}} contractors in {{.City}}</p>
    </div>

    <div class="content">
      <div class="info-box">
        <h2>Hi {{.HomeownerName}}!</h2>
        <p>Thank you for using TownKit to find contractors for your {{lower .ProjectType}} project in {{.City}}.</p>
        <p><strong>Submitted:</strong> {{.SubmittedAt}}</p>
      </div>

      <div class="steps">
        <h3>What happens next:</h3>
        <ol>
          <li><strong>Contractor Matching (Next 2 hours)</strong><br>
            We're reviewing your project and finding the best contractor matches in {{.City}}.</li>
          <li><strong>Contact from Contractors (24-48 hours)</strong><br>
            Up to 4 pre-screened contractors will reach out to discuss your project and provide quotes.</li>
          <li><strong>Compare and Choose</strong><br>
            Review quotes, ask questions, and select the contractor that's the best fit for your project.</li>
          <li><strong>Project Success</strong><br>
            Your chosen contractor will handle permits and construction, keeping you informed throughout.</li>
        </ol>
      </div>

      <div class="info-box">
        <h3>Questions?</h3>
        <p>Our team is here to help ensure you have a great experience.</p>
        <p>Email: <a href="mailto:help@townkit.com">help@townkit.com</a></p>
        <p>Phone: (555) 123-4567</p>
      </div>
    </div>

    <div class="footer">
      <p>TownKit - Making home improvement easier</p>
      <p><a href="https://townkit.com">Visit TownKit.com</a> | <a href="mailto:help@townkit.com">Support</a></p>
    </div>
  </div>
</body>
</html>
`))

var confirmationText = texttemplate.Must(texttemplate.New("confirmation").Parse(`Request Submitted Successfully

Hi {{.HomeownerName}}!

Thank you for using TownKit to find contractors for your project in {{.City}}.

Submitted: {{.SubmittedAt}}

What happens next:

1. Contractor Matching (Next 2 hours)
   We're reviewing your project and finding the best contractor matches in {{.City}}.

2. Contact from Contractors (24-48 hours)
   Up to 4 pre-screened contractors will reach out to discuss your project and provide quotes.

3. Compare and Choose
   Review quotes, ask questions, and select the contractor that's the best fit for your project.

4. Project Success
   Your chosen contractor will handle permits and construction, keeping you informed throughout.

Questions?
Our team is here to help ensure you have a great experience.

Email: help@townkit.com
Phone: (555) 123-4567

TownKit - Making home improvement easier
Visit TownKit.com | Support: help@townkit.com
`))

func RenderContractorNotification(data NotificationData) (*Rendered, error) {
	var html, text strings.Builder

	if err := notificationHTML.Execute(&html, data); err != nil {
		return nil, err
	}
	if err := notificationText.Execute(&text, data); err != nil {
		return nil, err
	}

	return &Rendered{
		Subject: fmt.Sprintf("New %s Lead in %s - %s", data.ProjectType, data.City, data.HomeownerName),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

func RenderConfirmation(data ConfirmationData) (*Rendered, error) {
	var html, text strings.Builder

	if err := confirmationHTML.Execute(&html, data); err != nil {
		return nil, err
	}
	if err := confirmationText.Execute(&text, data); err != nil {
		return nil, err
	}

	return &Rendered{
		Subject: fmt.Sprintf("Your %s contractor request has been submitted", data.ProjectType),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
