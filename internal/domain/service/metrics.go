package service

// MetricsRecorder counts outcomes the service layer must keep observable.
type MetricsRecorder interface {
	// WebhookProcessed counts a payment webhook by outcome.
	WebhookProcessed(result string)

	// GatewayCall counts a payment gateway request by operation and outcome.
	GatewayCall(operation, result string)

	// ModerationAction counts a moderation side effect by kind and outcome.
	ModerationAction(kind, result string)
}
