package main

import (
	"context"
	"fmt"
	"os"

	"nylas-email-app/config"
	"nylas-email-app/pkg/nylas"
)

// One-time setup: registers a message.created webhook pointing at
// SERVER_URL/events and prints the shared secret Nylas only reveals once.
// Put the printed secret into WEBHOOK_SECRET before starting the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Missing required variables at registration time is fatal.
	missing := []string{}
	if cfg.Nylas.APIKey == "" {
		missing = append(missing, "NYLAS_API_KEY")
	}
	if cfg.Nylas.APIURI == "" {
		missing = append(missing, "NYLAS_API_URI")
	}
	if cfg.ServerURL == "" {
		missing = append(missing, "SERVER_URL")
	}
	if cfg.Email == "" {
		missing = append(missing, "EMAIL")
	}
	if len(missing) > 0 {
		fmt.Println("Missing required environment variables: ", missing)
		os.Exit(1)
	}

	client := nylas.NewClient(cfg.Nylas.APIKey, cfg.Nylas.APIURI)

	webhook, err := client.CreateWebhook(context.Background(), nylas.CreateWebhookRequest{
		TriggerTypes:               []string{nylas.TriggerMessageCreated},
		WebhookURL:                 cfg.ServerURL + "/events",
		Description:                "Message Created Webhook",
		NotificationEmailAddresses: []string{cfg.Email},
	})
	if err != nil {
		fmt.Println("Failed to create webhook: ", err)
		os.Exit(1)
	}

	fmt.Printf("Webhook created: id=%s url=%s triggers=%v\n", webhook.ID, webhook.WebhookURL, webhook.TriggerTypes)
	fmt.Println("Webhook secret (save as WEBHOOK_SECRET): ", webhook.WebhookSecret)
}
