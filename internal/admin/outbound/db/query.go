package db

const (
	queryAdminColumns = `id, name, email, password, role, is_active, created_at, updated_at`

	queryGetAdminByID = `SELECT ` + queryAdminColumns + ` FROM admins WHERE id = $1`

	queryGetAdminByEmail = `SELECT ` + queryAdminColumns + ` FROM admins WHERE lower(email) = lower($1)`

	queryListAdmins = `SELECT ` + queryAdminColumns + ` FROM admins ORDER BY id DESC LIMIT $1 OFFSET $2`

	queryCountAdmins = `SELECT count(*) FROM admins`

	queryIsEmailTaken = `SELECT EXISTS (SELECT 1 FROM admins WHERE lower(email) = lower($1) AND id <> $2)`

	queryCreateAdmin = `INSERT INTO admins (id, name, email, password, role, is_active)
VALUES ($1, $2, $3, $4, $5, true)`

	queryPatchAdmin = `UPDATE admins SET
	name = COALESCE($2, name),
	email = COALESCE($3, email),
	password = COALESCE($4, password),
	role = COALESCE($5, role),
	is_active = COALESCE($6, is_active),
	updated_at = now()
WHERE id = $1`

	queryDeleteAdmin = `DELETE FROM admins WHERE id = $1`

	queryOtpColumns = `id, email, admin_id, context, code_hash, attempts, expires_at, verified_at, metadata, created_at, updated_at`

	queryCreateOtpToken = `INSERT INTO otp_tokens (id, email, admin_id, context, code_hash, attempts, expires_at, metadata, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 0, $6, $7, $8, $8)`

	queryGetOtpToken = `SELECT ` + queryOtpColumns + ` FROM otp_tokens WHERE id = $1`

	queryGetOtpTokenByContext = `SELECT ` + queryOtpColumns + ` FROM otp_tokens WHERE id = $1 AND context = $2`

	// The row lock taken by UPDATE serializes concurrent guesses on one token.
	queryChargeOtpAttempt = `UPDATE otp_tokens
SET attempts = attempts + 1, updated_at = $2
WHERE id = $1 AND verified_at IS NULL AND expires_at > $2 AND attempts < $3
RETURNING code_hash`

	queryMarkOtpTokenVerified = `UPDATE otp_tokens SET verified_at = $2, updated_at = $2 WHERE id = $1 AND verified_at IS NULL`

	queryDeleteOtpToken = `DELETE FROM otp_tokens WHERE id = $1`

	queryDeleteOtpTokensExpiredBefore = `DELETE FROM otp_tokens WHERE expires_at < $1`
)
