package constants

// Aggregate queries for the statistics endpoint. Written with "?" bindvars and
// rebound for the active driver by sqlx.
const (
	RepresentativeSummaryQuery = `
	SELECT
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN status = 'candidate' THEN 1 ELSE 0 END), 0) AS candidates,
		COALESCE(SUM(CASE WHEN status = 'elected' THEN 1 ELSE 0 END), 0) AS elected,
		COALESCE(SUM(CASE WHEN status = 'former' THEN 1 ELSE 0 END), 0) AS former,
		COALESCE(SUM(CASE WHEN is_distinguished THEN 1 ELSE 0 END), 0) AS distinguished,
		COALESCE(SUM(CASE WHEN gender = 'male' THEN 1 ELSE 0 END), 0) AS male,
		COALESCE(SUM(CASE WHEN gender = 'female' THEN 1 ELSE 0 END), 0) AS female,
		COALESCE(AVG(rating), 0) AS average_rating,
		COALESCE(SUM(solved_complaints), 0) AS solved_complaints,
		COALESCE(SUM(received_complaints), 0) AS received_complaints
	FROM representatives
	WHERE is_active = ?
	`

	GovernorateBreakdownQuery = `
	SELECT g.name AS name, COUNT(r.id) AS count
	FROM representatives r
	JOIN districts d ON d.id = r.district_id
	JOIN governorates g ON g.id = d.governorate_id
	WHERE r.is_active = ? AND g.is_active = ?
	GROUP BY g.name
	HAVING COUNT(r.id) > 0
	ORDER BY g.name
	`

	ReferenceCountsQuery = `
	SELECT
		(SELECT COUNT(*) FROM governorates WHERE is_active = ?) AS governorates,
		(SELECT COUNT(*) FROM districts WHERE is_active = ?) AS districts,
		(SELECT COUNT(*) FROM political_parties WHERE is_active = ?) AS parties
	`

	HealthProbeQuery = `SELECT COUNT(*) FROM representatives`
)
