package main

import (
	"context"
	"fmt"

	"pushclient/config"
	logs "pushclient/internal/infra/log"
	"pushclient/internal/infra/notification"

	"github.com/pkg/errors"
)

// runFCM sends one push using the firebase section of config.yaml
func runFCM(ctx context.Context, token, title, body string, data map[string]string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	sender, err := notification.NewFirebaseService(ctx, logger, cfg)
	if err != nil {
		return err
	}

	messageID, err := sender.SendSingleNotification(ctx, token, title, body, data)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Sent %s\n", messageID)

	return nil
}
