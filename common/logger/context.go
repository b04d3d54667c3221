package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment, so business context (profile_id,
// organization_id, module, etc.) shows up in every log statement without
// repeating it at each call site.
type LogFields struct {
	ProfileID      *int64  // Authenticated profile ID
	OrganizationID *int64  // Organization the request is scoped to
	WorkspaceID    *int64  // Workspace the request is scoped to
	SessionID      *int64  // Session backing the request
	Module         *string // Feature module being evaluated (e.g. "invoicing")
	Component      string  // Component name (e.g. "ordersnapr.access.flagcache")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

// mergeFields merges two LogFields, preferring non-nil/non-empty values from 'new'.
func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.ProfileID != nil {
		result.ProfileID = new.ProfileID
	}
	if new.OrganizationID != nil {
		result.OrganizationID = new.OrganizationID
	}
	if new.WorkspaceID != nil {
		result.WorkspaceID = new.WorkspaceID
	}
	if new.SessionID != nil {
		result.SessionID = new.SessionID
	}
	if new.Module != nil {
		result.Module = new.Module
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{ProfileID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
// Useful for logging potentially long strings like feature config payloads.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
