package store

// Seller profile queries.
const (
	sellerProfileColumns = `seller_id, avg_response_time, negotiation_flexibility,
		listing_count, account_age_days, feedback_score, observation_count, updated_at`

	queryGetSellerProfile = `
		SELECT ` + sellerProfileColumns + `
		FROM seller_profiles
		WHERE seller_id = $1`

	queryLockSellerProfile = `
		SELECT ` + sellerProfileColumns + `
		FROM seller_profiles
		WHERE seller_id = $1
		FOR UPDATE`

	queryUpsertSellerProfile = `
		INSERT INTO seller_profiles (
			seller_id, avg_response_time, negotiation_flexibility,
			listing_count, account_age_days, feedback_score, observation_count
		) VALUES (
			@seller_id, @avg_response_time, @negotiation_flexibility,
			@listing_count, @account_age_days, @feedback_score, @observation_count
		)
		ON CONFLICT (seller_id) DO UPDATE SET
			avg_response_time       = EXCLUDED.avg_response_time,
			negotiation_flexibility = EXCLUDED.negotiation_flexibility,
			listing_count           = EXCLUDED.listing_count,
			account_age_days        = EXCLUDED.account_age_days,
			feedback_score          = EXCLUDED.feedback_score,
			observation_count       = EXCLUDED.observation_count,
			updated_at              = now()
		RETURNING updated_at`
)

// Outcome queries.
const (
	queryInsertOutcome = `
		INSERT INTO outcomes (
			id, item_name, original_price, offered_price,
			strategy, outcome, response_time_hours, recorded_at
		) VALUES (
			@id, @item_name, @original_price, @offered_price,
			@strategy, @outcome, @response_time_hours, @recorded_at
		)`

	queryStrategyStats = `
		SELECT strategy,
			COUNT(*),
			COUNT(*) FILTER (WHERE outcome = 'accepted'),
			COUNT(*) FILTER (WHERE outcome = 'countered'),
			COUNT(*) FILTER (WHERE outcome = 'rejected'),
			COUNT(*) FILTER (WHERE outcome = 'ignored')
		FROM outcomes
		GROUP BY strategy
		ORDER BY strategy`
)

// Comparable queries.
const (
	queryInsertComparable = `
		INSERT INTO comparables (query, price, sold, observed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (query, price, sold, observed_at) DO NOTHING`

	queryListComparables = `
		SELECT query, price, sold, observed_at
		FROM comparables
		WHERE query = $1 AND observed_at >= $2
		ORDER BY observed_at DESC`

	queryPruneComparables = `
		DELETE FROM comparables WHERE observed_at < $1`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
