package db

const (
	querySubmissionColumns = `id, form_type, full_name, email, phone, title, status, payload, admin_notes,
	admin_viewed_at, ip, user_agent, created_at, updated_at`

	querySubmissionFilter = `WHERE ($1::text IS NULL OR form_type = $1)
	AND ($2::text IS NULL OR status = $2)
	AND ($3::text = '' OR full_name ILIKE '%' || $3 || '%' OR email ILIKE '%' || $3 || '%'
		OR phone ILIKE '%' || $3 || '%' OR title ILIKE '%' || $3 || '%')`

	queryListSubmissions = `SELECT ` + querySubmissionColumns + ` FROM application_submissions ` + querySubmissionFilter + `
ORDER BY created_at DESC, id DESC LIMIT $4 OFFSET $5`

	queryCountSubmissions = `SELECT count(*) FROM application_submissions ` + querySubmissionFilter

	queryGetSubmissionByID = `SELECT ` + querySubmissionColumns + ` FROM application_submissions WHERE id = $1`

	queryCreateSubmission = `INSERT INTO application_submissions
	(id, form_type, full_name, email, phone, title, status, payload, ip, user_agent)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	queryUpdateSubmission = `UPDATE application_submissions SET status = $2, admin_notes = $3, updated_at = now() WHERE id = $1`

	queryMarkSubmissionViewed = `UPDATE application_submissions SET admin_viewed_at = $2
WHERE id = $1 AND admin_viewed_at IS NULL`

	queryDeleteSubmission = `DELETE FROM application_submissions WHERE id = $1`
)
