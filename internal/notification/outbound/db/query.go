package db

const (
	queryCountNotifications = `SELECT COUNT(*) FROM admin_notifications
		WHERE recipient_id = $1 AND ($2::boolean = false OR read_at IS NULL)`

	queryListNotifications = `SELECT id, recipient_id, title, message, type, data, read_at, created_at
		FROM admin_notifications
		WHERE recipient_id = $1 AND ($2::boolean = false OR read_at IS NULL)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`

	queryCountUnread = `SELECT COUNT(*) FROM admin_notifications WHERE recipient_id = $1 AND read_at IS NULL`

	queryInsertNotification = `INSERT INTO admin_notifications (id, recipient_id, title, message, type, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	queryMarkRead = `UPDATE admin_notifications SET read_at = COALESCE(read_at, $3)
		WHERE id = $1 AND recipient_id = $2`

	queryMarkAllRead = `UPDATE admin_notifications SET read_at = $2
		WHERE recipient_id = $1 AND read_at IS NULL`

	queryDeleteNotification = `DELETE FROM admin_notifications WHERE id = $1 AND recipient_id = $2`

	queryListActiveAdminIDs = `SELECT id FROM admins WHERE is_active = true ORDER BY id`

	queryAdminExists = `SELECT EXISTS (SELECT 1 FROM admins WHERE id = $1)`
)
