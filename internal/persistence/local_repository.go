package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/IliaW/rank-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name LocalStorage
type LocalStorage interface {
	Listings(ctx context.Context, filter model.LocalListingFilter) ([]model.LocalListing, error)
	Totals(ctx context.Context) (model.LocalTotals, error)
	Reviews(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error)
	ReviewCounts(ctx context.Context) ([]model.RatingCount, []model.SentimentCount, error)
	MapRankings(ctx context.Context, filter model.MapRankingFilter) ([]model.MapRanking, error)
	LocationRanks(ctx context.Context) ([]model.LocationRank, error)
}

type LocalRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewLocalRepository(db *sql.DB, log *slog.Logger) *LocalRepository {
	return &LocalRepository{
		db:  db,
		log: log,
	}
}

// Listings lists the most recently synced business listings matching the filter.
func (r *LocalRepository) Listings(ctx context.Context, filter model.LocalListingFilter) ([]model.LocalListing, error) {
	var c conditions
	c.addIf("platform", filter.Platform)
	c.addIf("status", filter.Status)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, business_name, platform, profile_url, status, nap, categories, rating, review_count,
		is_verified, last_synced, issues FROM local_listing`+c.where()+` ORDER BY last_synced DESC LIMIT ?`,
		append(c.args, filter.Limit)...)
	if err != nil {
		r.log.Debug("failed to list local listings.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.LocalListing, 0)
	for rows.Next() {
		l := model.LocalListing{Categories: []string{}, Issues: []string{}}
		var profileUrl, nap, categories, issues sql.NullString
		var rating sql.NullFloat64
		if err = rows.Scan(&l.ID, &l.BusinessName, &l.Platform, &profileUrl, &l.Status, &nap, &categories,
			&rating, &l.ReviewCount, &l.IsVerified, &l.LastSynced, &issues); err != nil {
			return nil, err
		}
		l.ProfileUrl = stringPtr(profileUrl)
		l.Rating = floatPtr(rating)
		if err = decodeJSON(nap, &l.Nap); err != nil {
			return nil, fmt.Errorf("local listing '%s' nap: %w", l.ID, err)
		}
		if err = decodeJSON(categories, &l.Categories); err != nil {
			return nil, fmt.Errorf("local listing '%s' categories: %w", l.ID, err)
		}
		if err = decodeJSON(issues, &l.Issues); err != nil {
			return nil, fmt.Errorf("local listing '%s' issues: %w", l.ID, err)
		}
		out = append(out, l)
	}

	return out, rows.Err()
}

// Totals counts listings and reviews. A listing has a NAP issue when one of its issues mentions NAP.
func (r *LocalRepository) Totals(ctx context.Context) (model.LocalTotals, error) {
	var t model.LocalTotals
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(is_verified), 0), AVG(rating), COALESCE(SUM(issues LIKE '%NAP%'), 0)
		FROM local_listing`).Scan(&t.Listings, &t.VerifiedListings, &avg, &t.NapIssues)
	if err != nil {
		r.log.Debug("failed to count local listings.", slog.String("err", err.Error()))
		return t, err
	}
	t.AvgRating = floatPtr(avg)

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(NOT is_responded), 0) FROM review`).
		Scan(&t.Reviews, &t.PendingResponses)
	if err != nil {
		r.log.Debug("failed to count reviews.", slog.String("err", err.Error()))
	}

	return t, err
}

// Reviews lists the newest reviews matching the filter.
func (r *LocalRepository) Reviews(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	var c conditions
	c.addIf("platform", filter.Platform)
	c.addIf("sentiment", filter.Sentiment)
	if filter.Responded != nil {
		c.add("is_responded = ?", *filter.Responded)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, listing_id, platform, author_name, rating, content, sentiment, is_responded, response,
		published_at, responded_at FROM review`+c.where()+` ORDER BY published_at DESC LIMIT ?`,
		append(c.args, filter.Limit)...)
	if err != nil {
		r.log.Debug("failed to list reviews.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Review, 0)
	for rows.Next() {
		var rv model.Review
		var content, response sql.NullString
		var respondedAt sql.NullTime
		if err = rows.Scan(&rv.ID, &rv.ListingID, &rv.Platform, &rv.AuthorName, &rv.Rating, &content,
			&rv.Sentiment, &rv.IsResponded, &response, &rv.PublishedAt, &respondedAt); err != nil {
			return nil, err
		}
		rv.Content = stringPtr(content)
		rv.Response = stringPtr(response)
		rv.RespondedAt = timePtr(respondedAt)
		out = append(out, rv)
	}

	return out, rows.Err()
}

// ReviewCounts groups reviews by rating, highest first, and by sentiment.
func (r *LocalRepository) ReviewCounts(ctx context.Context) ([]model.RatingCount, []model.SentimentCount, error) {
	ratingRows, err := r.db.QueryContext(ctx,
		`SELECT rating, COUNT(*) FROM review GROUP BY rating ORDER BY rating DESC`)
	if err != nil {
		r.log.Debug("failed to group reviews by rating.", slog.String("err", err.Error()))
		return nil, nil, err
	}
	defer ratingRows.Close()

	ratings := make([]model.RatingCount, 0)
	for ratingRows.Next() {
		var rc model.RatingCount
		if err = ratingRows.Scan(&rc.Rating, &rc.Count); err != nil {
			return nil, nil, err
		}
		ratings = append(ratings, rc)
	}
	if err = ratingRows.Err(); err != nil {
		return nil, nil, err
	}

	sentimentRows, err := r.db.QueryContext(ctx,
		`SELECT sentiment, COUNT(*) FROM review GROUP BY sentiment ORDER BY sentiment`)
	if err != nil {
		r.log.Debug("failed to group reviews by sentiment.", slog.String("err", err.Error()))
		return nil, nil, err
	}
	defer sentimentRows.Close()

	sentiments := make([]model.SentimentCount, 0)
	for sentimentRows.Next() {
		var sc model.SentimentCount
		if err = sentimentRows.Scan(&sc.Sentiment, &sc.Count); err != nil {
			return nil, nil, err
		}
		sentiments = append(sentiments, sc)
	}

	return ratings, sentiments, sentimentRows.Err()
}

// MapRankings lists the newest local map rankings matching the filter.
func (r *LocalRepository) MapRankings(ctx context.Context, filter model.MapRankingFilter) ([]model.MapRanking, error) {
	var c conditions
	if filter.Keyword != "" {
		c.add("keyword LIKE ?", containsPattern(filter.Keyword))
	}
	c.addIf("location", filter.Location)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, keyword, location, grid_size, positions, avg_rank, top_rank, date
		FROM map_ranking`+c.where()+` ORDER BY date DESC LIMIT ?`, append(c.args, filter.Limit)...)
	if err != nil {
		r.log.Debug("failed to list map rankings.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.MapRanking, 0)
	for rows.Next() {
		m := model.MapRanking{Positions: []int{}}
		var positions sql.NullString
		if err = rows.Scan(&m.ID, &m.Keyword, &m.Location, &m.GridSize, &positions, &m.AvgRank, &m.TopRank,
			&m.Date); err != nil {
			return nil, err
		}
		if err = decodeJSON(positions, &m.Positions); err != nil {
			return nil, fmt.Errorf("map ranking '%s' positions: %w", m.ID, err)
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *LocalRepository) LocationRanks(ctx context.Context) ([]model.LocationRank, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT location, COALESCE(AVG(avg_rank), 0), COUNT(*) FROM map_ranking GROUP BY location ORDER BY location`)
	if err != nil {
		r.log.Debug("failed to group map rankings.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.LocationRank, 0)
	for rows.Next() {
		var l model.LocationRank
		if err = rows.Scan(&l.Location, &l.AvgRank, &l.Count); err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	return out, rows.Err()
}
