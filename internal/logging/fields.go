package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldSource identifies the dataset a catalog was built from.
	FieldSource = "source"
	// FieldFingerprint is the content fingerprint of a dataset.
	FieldFingerprint = "fingerprint"
	// FieldGeneration identifies one catalog build.
	FieldGeneration = "generation"
)
