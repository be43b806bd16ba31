package service

import "context"

// Alerter surfaces an interactive alert to the user.
type Alerter interface {
	Alert(ctx context.Context, title, message string)
}
