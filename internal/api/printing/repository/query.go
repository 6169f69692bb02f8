package printingRepository

const (
	queryCreatePrintRequest = `
		INSERT INTO print_requests (
			id,
			phone_number,
			event_code,
			image_name,
			created_at
		) VALUES (
			:id,
			:phone_number,
			:event_code,
			:image_name,
			:created_at
		)
	`

	queryGetPrintRequestsByEventCode = `
		SELECT
			id,
			phone_number,
			event_code,
			image_name,
			created_at
		FROM print_requests
		WHERE event_code = :event_code
		ORDER BY created_at DESC
	`
)
