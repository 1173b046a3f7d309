package db

const (
	querySettingColumns = `id, key, value, type, group_name, description, is_public, created_at, updated_at`

	queryListSettings = `SELECT ` + querySettingColumns + ` FROM settings
WHERE ($1::text IS NULL OR group_name = $1) AND ($2::boolean IS NULL OR is_public = $2)
ORDER BY group_name ASC, key ASC
LIMIT $3 OFFSET $4`

	queryCountSettings = `SELECT count(*) FROM settings
WHERE ($1::text IS NULL OR group_name = $1) AND ($2::boolean IS NULL OR is_public = $2)`

	queryListSettingsByGroup = `SELECT ` + querySettingColumns + ` FROM settings
WHERE group_name = $1 AND (NOT $2 OR is_public)
ORDER BY key ASC`

	queryGetSettingByID = `SELECT ` + querySettingColumns + ` FROM settings WHERE id = $1`

	queryGetSettingByKey = `SELECT ` + querySettingColumns + ` FROM settings WHERE key = $1`

	queryCreateSetting = `INSERT INTO settings (id, key, value, type, group_name, description, is_public)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	queryUpdateSetting = `UPDATE settings SET
	key = $2, value = $3, type = $4, group_name = $5, description = $6, is_public = $7, updated_at = now()
WHERE id = $1`

	queryDeleteSetting = `DELETE FROM settings WHERE id = $1`
)
