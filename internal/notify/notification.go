package notify

import (
	"context"

	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is the user-facing outcome of an operation.
type Notification struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Variant       Variant `json:"variant"`
	CorrelationID string  `json:"correlation_id,omitempty"`
}

func Info(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDefault}
}

func Failure(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDestructive}
}

// Notifier accepts notifications without blocking the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Sink delivers one notification somewhere.
type Sink interface {
	Send(n Notification) error
}

type ctxKey struct{}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// FromError builds the destructive notification for a failed operation.
func FromError(title string, err error) Notification {
	return Failure(title, httperr.Message(httperr.BusinessCode(err)))
}
