package db

const (
	queryStaffColumns = `id, kind, name, position, designation, bio, qualifications, email, phone, department,
	image, image_mime, image_size, image_width, image_height, sort_order, is_active, created_at, updated_at`

	queryStaffFilter = `WHERE kind = $1 AND ($2::boolean IS NULL OR is_active = $2)`

	queryListStaff = `SELECT ` + queryStaffColumns + ` FROM staff_profiles ` + queryStaffFilter + `
ORDER BY sort_order ASC, created_at DESC, id DESC LIMIT $3 OFFSET $4`

	queryCountStaff = `SELECT count(*) FROM staff_profiles ` + queryStaffFilter

	queryGetStaffByID = `SELECT ` + queryStaffColumns + ` FROM staff_profiles WHERE kind = $1 AND id = $2`

	queryCreateStaff = `INSERT INTO staff_profiles
	(id, kind, name, position, designation, bio, qualifications, email, phone, department,
	image, image_mime, image_size, image_width, image_height, sort_order, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	queryUpdateStaff = `UPDATE staff_profiles SET
	name = $3, position = $4, designation = $5, bio = $6, qualifications = $7, email = $8, phone = $9,
	department = $10, image = $11, image_mime = $12, image_size = $13, image_width = $14, image_height = $15,
	sort_order = $16, is_active = $17, updated_at = now()
WHERE kind = $1 AND id = $2`

	queryDeleteStaff = `DELETE FROM staff_profiles WHERE kind = $1 AND id = $2 RETURNING image`

	queryFacilityColumns = `id, name, slug, description, image, image_data, image_mime, icon, category, capacity,
	location, features, is_featured, sort_order, is_active, created_at, updated_at`

	queryFacilityFilter = `WHERE ($1::boolean IS NULL OR is_active = $1)
	AND ($2::boolean IS NULL OR is_featured = $2)
	AND ($3::text IS NULL OR category = $3)`

	queryListFacilities = `SELECT ` + queryFacilityColumns + ` FROM facilities ` + queryFacilityFilter + `
ORDER BY sort_order ASC, created_at DESC, id DESC LIMIT $4 OFFSET $5`

	queryCountFacilities = `SELECT count(*) FROM facilities ` + queryFacilityFilter

	queryGetFacilityByID = `SELECT ` + queryFacilityColumns + ` FROM facilities WHERE id = $1`

	queryCreateFacility = `INSERT INTO facilities
	(id, name, slug, description, image, image_data, image_mime, icon, category, capacity, location,
	features, is_featured, sort_order, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	queryUpdateFacility = `UPDATE facilities SET
	name = $2, slug = $3, description = $4, image = $5, image_data = $6, image_mime = $7, icon = $8,
	category = $9, capacity = $10, location = $11, features = $12, is_featured = $13, sort_order = $14,
	is_active = $15, updated_at = now()
WHERE id = $1`

	queryDeleteFacility = `DELETE FROM facilities WHERE id = $1`
)
