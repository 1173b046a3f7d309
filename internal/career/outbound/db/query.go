package db

const (
	queryJobColumns = `id, title, department, description, requirements, location, employment_type,
	(salary_min * 100)::bigint AS salary_min_cents, (salary_max * 100)::bigint AS salary_max_cents,
	deadline, is_active, sort_order, created_at, updated_at`

	queryListJobPostings = `SELECT ` + queryJobColumns + ` FROM job_postings
WHERE ($1::boolean IS NULL OR is_active = $1)
ORDER BY sort_order ASC, created_at DESC, id DESC LIMIT $2 OFFSET $3`

	queryCountJobPostings = `SELECT count(*) FROM job_postings WHERE ($1::boolean IS NULL OR is_active = $1)`

	queryGetJobPostingByID = `SELECT ` + queryJobColumns + ` FROM job_postings WHERE id = $1`

	queryCreateJobPosting = `INSERT INTO job_postings
	(id, title, department, description, requirements, location, employment_type, salary_min, salary_max, deadline, is_active, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8::bigint / 100.0, $9::bigint / 100.0, $10, $11, $12)`

	queryUpdateJobPosting = `UPDATE job_postings SET
	title = $2, department = $3, description = $4, requirements = $5, location = $6, employment_type = $7,
	salary_min = $8::bigint / 100.0, salary_max = $9::bigint / 100.0, deadline = $10, is_active = $11,
	sort_order = $12, updated_at = now()
WHERE id = $1`

	queryDeleteJobPosting = `DELETE FROM job_postings WHERE id = $1`

	queryCareerColumns = `id, title, description, requirements, location, employment_type, department, apply_url,
	is_active, sort_order, created_at, updated_at`

	queryListCareers = `SELECT ` + queryCareerColumns + ` FROM careers
WHERE ($1::boolean IS NULL OR is_active = $1)
ORDER BY sort_order ASC, created_at DESC, id DESC LIMIT $2 OFFSET $3`

	queryCountCareers = `SELECT count(*) FROM careers WHERE ($1::boolean IS NULL OR is_active = $1)`

	queryGetCareerByID = `SELECT ` + queryCareerColumns + ` FROM careers WHERE id = $1`

	queryCreateCareer = `INSERT INTO careers
	(id, title, description, requirements, location, employment_type, department, apply_url, is_active, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	queryUpdateCareer = `UPDATE careers SET
	title = $2, description = $3, requirements = $4, location = $5, employment_type = $6, department = $7,
	apply_url = $8, is_active = $9, sort_order = $10, updated_at = now()
WHERE id = $1`

	queryDeleteCareer = `DELETE FROM careers WHERE id = $1`
)
