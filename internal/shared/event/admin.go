package event

const AdminCredentialChangedDestination string = "admin.credential_changed"
const AdminCredentialChangedConsumerNotification string = "notification"

type AdminCredentialChangedMessage struct {
	AdminID int64  `json:"admin_id"`
	Email   string `json:"email"`
	Change  string `json:"change"`
}
