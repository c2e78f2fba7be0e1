package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/donaldgifford/haggle/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // confidence 4-5
	colorYellow = 0xF1C40F // confidence 3
	colorOrange = 0xE67E22 // confidence 1-2

	defaultDiscordTimeout = 10 * time.Second
)

// ErrRateLimited is returned when Discord answers 429.
var ErrRateLimited = errors.New("discord rate limited")

// DiscordNotifier posts alerts to a Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *resty.Client
}

var _ Notifier = (*DiscordNotifier)(nil)

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithTimeout sets the webhook request timeout.
func WithTimeout(d time.Duration) DiscordOption {
	return func(n *DiscordNotifier) {
		n.client.SetTimeout(d)
	}
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client: resty.New().
			SetTimeout(defaultDiscordTimeout).
			SetHeader("Content-Type", "application/json"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendOfferAlert posts a single alert as a Discord embed.
func (d *DiscordNotifier) SendOfferAlert(ctx context.Context, alert *OfferAlert) error {
	err := d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{buildEmbed(alert)}})
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		return err
	}
	metrics.NotificationsSentTotal.Inc()
	return nil
}

func buildEmbed(alert *OfferAlert) discordEmbed {
	fields := []discordEmbedField{
		{Name: "Listed", Value: fmt.Sprintf("£%.2f", alert.ListedPrice), Inline: true},
		{Name: "Offer", Value: fmt.Sprintf("£%.2f", alert.OfferPrice), Inline: true},
		{Name: "Discount", Value: fmt.Sprintf("%.1f%%", alert.DiscountPercent), Inline: true},
		{Name: "Confidence", Value: fmt.Sprintf("%d/5", alert.Confidence), Inline: true},
		{Name: "Position", Value: string(alert.Position), Inline: true},
	}
	if alert.SellerID != "" {
		fields = append(fields, discordEmbedField{Name: "Seller", Value: alert.SellerID, Inline: true})
	}
	if alert.Message != "" {
		fields = append(fields, discordEmbedField{Name: "Suggested message", Value: alert.Message})
	}

	return discordEmbed{
		Title:       fmt.Sprintf("%s: %s", alert.Method, alert.ItemName),
		Color:       confidenceColor(alert.Confidence),
		Description: alert.Rationale,
		Fields:      fields,
	}
}

func confidenceColor(confidence int) int {
	switch {
	case confidence >= 4:
		return colorGreen
	case confidence == 3:
		return colorYellow
	default:
		return colorOrange
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(d.webhookURL)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}

	if resp.StatusCode() == 429 {
		return fmt.Errorf("%w (429)", ErrRateLimited)
	}
	if resp.IsError() {
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
