package email

import (
	"context"
	"fmt"
)

// Dispatcher owns the configured provider and from-address, and joins
// template rendering with transport.
type Dispatcher struct {
	provider Provider
	from     string
}

func NewDispatcher(provider Provider, from string) *Dispatcher {
	return &Dispatcher{
		provider: provider,
		from:     from,
	}
}

func (d *Dispatcher) SendContractorNotification(ctx context.Context, data NotificationData) error {
	rendered, err := RenderContractorNotification(data)
	if err != nil {
		return fmt.Errorf("render contractor notification: %w", err)
	}

	return d.provider.Send(ctx, Message{
		To:      data.ContractorEmail,
		From:    d.from,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
}

func (d *Dispatcher) SendConfirmation(ctx context.Context, data ConfirmationData, to string) error {
	rendered, err := RenderConfirmation(data)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	return d.provider.Send(ctx, Message{
		To:      to,
		From:    d.from,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
}
