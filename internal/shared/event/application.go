package event

const ApplicationSubmittedDestination string = "application.submitted"
const ApplicationSubmittedConsumerNotification string = "notification"

type ApplicationSubmittedMessage struct {
	SubmissionID int64          `json:"submission_id"`
	FormType     string         `json:"form_type"`
	FullName     string         `json:"full_name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Title        string         `json:"title"`
	Payload      map[string]any `json:"payload"`
}
