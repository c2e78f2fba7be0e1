package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByRecordedAt    = "recorded_at"
	orderByDiscount      = "discount"
	orderByOriginalPrice = "original_price"
)

var validOrderBy = map[string]string{
	orderByRecordedAt:    "recorded_at DESC",
	orderByDiscount:      "(1 - offered_price / original_price) DESC",
	orderByOriginalPrice: "original_price DESC",
}

const defaultOrderBy = "recorded_at DESC"

// Page returns the effective limit and offset: a non-positive limit means
// 50, limits are capped at 500 and negative offsets count as zero.
func (q *OutcomeQuery) Page() (limit, offset int) {
	limit = q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return min(limit, maxLimit), max(q.Offset, 0)
}

const baseOutcomesSelect = `SELECT id, item_name, original_price, offered_price,
	strategy, outcome, response_time_hours, recorded_at
FROM outcomes`

const countOutcomesSelect = "SELECT COUNT(*) FROM outcomes"

// ToSQL builds the data and count statements for an outcome query along
// with their positional parameters. Limit and offset are inlined after
// clamping so they never reach the driver as user-controlled strings.
func (q *OutcomeQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Strategy != nil {
		conditions = append(conditions, fmt.Sprintf("strategy = $%d", paramIdx))
		args = append(args, *q.Strategy)
		paramIdx++
	}

	if q.Outcome != nil {
		conditions = append(conditions, fmt.Sprintf("outcome = $%d", paramIdx))
		args = append(args, *q.Outcome)
		paramIdx++
	}

	if q.ItemName != nil && strings.TrimSpace(*q.ItemName) != "" {
		conditions = append(conditions, fmt.Sprintf("item_name ILIKE $%d", paramIdx))
		args = append(args, "%"+escapeLike(strings.TrimSpace(*q.ItemName))+"%")
		paramIdx++
	}

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("recorded_at >= $%d", paramIdx))
		args = append(args, *q.Since)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit, offset := q.Page()

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseOutcomesSelect, whereClause, orderClause, limit, offset,
	)
	countSQL = countOutcomesSelect + whereClause

	return dataSQL, countSQL, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
