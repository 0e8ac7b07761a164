package scoring

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymflow/gymflow/internal/telemetry/tracing"
	"github.com/gymflow/gymflow/pkg"
)

const DefaultRankingLimit = 100

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// AddPoint awards one point to the user and returns the new total. The
// upsert makes concurrent awards safe, no read-then-write window.
func (r *Repo) AddPoint(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scoring.addPoint")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var total int
	err = r.db.QueryRow(ctx,
		`INSERT INTO points (user_id, points) VALUES ($1, 1)
			ON CONFLICT (user_id) DO UPDATE SET points = points.points + 1
			RETURNING points`,
		userID,
	).Scan(&total)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("add point for user %d: %w", userID, err)
	}
	return total, nil
}

// Ranking returns the top users ordered by points, ties broken by
// username. Users without a points row are included with 0.
func (r *Repo) Ranking(ctx context.Context, limit int) (_ []RankingEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scoring.ranking")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.user_name, u.profile_picture_url, COALESCE(p.points, 0) AS points
			FROM users u
			LEFT JOIN points p ON u.id = p.user_id
			ORDER BY points DESC, u.user_name ASC
			LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query ranking: %w", err)
	}
	defer rows.Close()

	ranking := make([]RankingEntry, 0)
	for rows.Next() {
		var entry RankingEntry
		if err := rows.Scan(&entry.UserID, &entry.UserName, &entry.ProfilePictureURL, &entry.Points); err != nil {
			return nil, fmt.Errorf("scan ranking row: %w", err)
		}
		entry.Position = len(ranking) + 1
		ranking = append(ranking, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ranking rows: %w", err)
	}

	return ranking, nil
}
