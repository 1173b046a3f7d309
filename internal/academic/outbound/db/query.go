package db

const (
	queryCourseColumns = `c.id, c.title, c.description, c.code, c.duration_hours,
	(c.price * 100)::bigint AS price_cents, c.level, c.instructor, c.is_active,
	(SELECT count(*) FROM enrollments en WHERE en.course_id = c.id) AS enrollments_count,
	c.created_at, c.updated_at`

	queryCourseFilter = `WHERE ($1::text = '' OR c.title ILIKE '%' || $1 || '%' OR c.code ILIKE '%' || $1 || '%' OR c.instructor ILIKE '%' || $1 || '%')
	AND ($2::text IS NULL OR c.level = $2)
	AND ($3::boolean IS NULL OR c.is_active = $3)`

	queryListCourses = `SELECT ` + queryCourseColumns + ` FROM courses c ` + queryCourseFilter + `
ORDER BY c.created_at DESC, c.id DESC LIMIT $4 OFFSET $5`

	queryCountCourses = `SELECT count(*) FROM courses c ` + queryCourseFilter

	queryGetCourseByID = `SELECT ` + queryCourseColumns + ` FROM courses c WHERE c.id = $1`

	queryCreateCourse = `INSERT INTO courses (id, title, description, code, duration_hours, price, level, instructor, is_active)
VALUES ($1, $2, $3, $4, $5, $6::bigint / 100.0, $7, $8, $9)`

	queryUpdateCourse = `UPDATE courses SET
	title = $2, description = $3, code = $4, duration_hours = $5, price = $6::bigint / 100.0,
	level = $7, instructor = $8, is_active = $9, updated_at = now()
WHERE id = $1`

	queryDeleteCourse = `DELETE FROM courses WHERE id = $1`

	queryStudentColumns = `s.id, s.first_name, s.last_name, s.email, s.phone, s.date_of_birth, s.address, s.city,
	s.country, s.education_level, s.resume_path, s.is_active,
	(SELECT count(*) FROM enrollments en WHERE en.student_id = s.id) AS enrollments_count,
	s.created_at, s.updated_at`

	queryStudentFilter = `WHERE ($1::text = '' OR s.first_name ILIKE '%' || $1 || '%' OR s.last_name ILIKE '%' || $1 || '%' OR s.email ILIKE '%' || $1 || '%')
	AND ($2::boolean IS NULL OR s.is_active = $2)`

	queryListStudents = `SELECT ` + queryStudentColumns + ` FROM students s ` + queryStudentFilter + `
ORDER BY s.created_at DESC, s.id DESC LIMIT $3 OFFSET $4`

	queryCountStudents = `SELECT count(*) FROM students s ` + queryStudentFilter

	queryGetStudentByID = `SELECT ` + queryStudentColumns + ` FROM students s WHERE s.id = $1`

	queryCreateStudent = `INSERT INTO students (id, first_name, last_name, email, phone, date_of_birth, address, city, country, education_level, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	queryUpdateStudent = `UPDATE students SET
	first_name = $2, last_name = $3, email = $4, phone = $5, date_of_birth = $6, address = $7,
	city = $8, country = $9, education_level = $10, is_active = $11, updated_at = now()
WHERE id = $1`

	querySetStudentResume = `UPDATE students SET resume_path = $2, updated_at = now() WHERE id = $1`

	queryDeleteStudent = `DELETE FROM students WHERE id = $1 RETURNING resume_path`

	queryEnrollmentColumns = `e.id, e.student_id, e.course_id, e.enrollment_date,
	(e.amount_paid * 100)::bigint AS amount_paid_cents, e.payment_status, e.enrollment_status,
	e.completion_date, e.remarks, e.created_at, e.updated_at,
	s.first_name AS student_first_name, s.last_name AS student_last_name, s.email AS student_email,
	c.title AS course_title, c.code AS course_code`

	queryEnrollmentFrom = ` FROM enrollments e
JOIN students s ON s.id = e.student_id
JOIN courses c ON c.id = e.course_id `

	queryEnrollmentFilter = `WHERE ($1::bigint = 0 OR e.student_id = $1)
	AND ($2::bigint = 0 OR e.course_id = $2)
	AND ($3::text IS NULL OR e.payment_status = $3)
	AND ($4::text IS NULL OR e.enrollment_status = $4)`

	queryListEnrollments = `SELECT ` + queryEnrollmentColumns + queryEnrollmentFrom + queryEnrollmentFilter + `
ORDER BY e.created_at DESC, e.id DESC LIMIT $5 OFFSET $6`

	queryCountEnrollments = `SELECT count(*) FROM enrollments e ` + queryEnrollmentFilter

	queryGetEnrollmentByID = `SELECT ` + queryEnrollmentColumns + queryEnrollmentFrom + `WHERE e.id = $1`

	queryCreateEnrollment = `INSERT INTO enrollments
	(id, student_id, course_id, enrollment_date, amount_paid, payment_status, enrollment_status, completion_date, remarks)
VALUES ($1, $2, $3, $4, $5::bigint / 100.0, $6, $7, $8, $9)`

	queryUpdateEnrollment = `UPDATE enrollments SET
	enrollment_date = $2, amount_paid = $3::bigint / 100.0, payment_status = $4, enrollment_status = $5,
	completion_date = $6, remarks = $7, updated_at = now()
WHERE id = $1`

	queryDeleteEnrollment = `DELETE FROM enrollments WHERE id = $1`
)
