package validation

// Description length bounds applied at the front-end boundary.
const (
	DescriptionMinLength = 1
	DescriptionMaxLength = 255
)

// TaskValidator provides validation for task-related input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateDescription validates a task description before it reaches a
// use case. Blank descriptions are rejected here, not in the core.
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(description) {
		validationError.AddRequiredError("description")
		return validationError
	}

	if !tv.validator.IsValidStringLength(description, DescriptionMinLength, DescriptionMaxLength) {
		validationError.AddInvalidLengthError("description", description, DescriptionMinLength, DescriptionMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task identifier supplied by the user
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidTaskID(id) {
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
		return validationError
	}

	return nil
}
