package persistence

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/IliaW/rank-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name TrafficStorage
type TrafficStorage interface {
	Daily(ctx context.Context, domain string, since time.Time) ([]model.TrafficData, error)
	TopDomains(ctx context.Context, since time.Time, limit int) ([]model.DomainTraffic, error)
	Industries(ctx context.Context) ([]string, error)
	MarketOverview(ctx context.Context, industry string, limit int) ([]model.MarketShare, error)
	MarketTrend(ctx context.Context, domain string, since time.Time) ([]model.MarketTrendPoint, error)
}

type TrafficRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewTrafficRepository(db *sql.DB, log *slog.Logger) *TrafficRepository {
	return &TrafficRepository{
		db:  db,
		log: log,
	}
}

func (r *TrafficRepository) Daily(ctx context.Context, domain string, since time.Time) ([]model.TrafficData, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, domain, date, visits, page_views, bounce_rate, avg_duration, pages_per_visit, direct_traffic,
		search_traffic, social_traffic, referral_traffic, paid_traffic
		FROM traffic_data WHERE domain = ? AND date >= ? ORDER BY date ASC`, domain, since)
	if err != nil {
		r.log.Debug("failed to load traffic data.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.TrafficData, 0)
	for rows.Next() {
		var d model.TrafficData
		if err = rows.Scan(&d.ID, &d.Domain, &d.Date, &d.Visits, &d.PageViews, &d.BounceRate, &d.AvgDuration,
			&d.PagesPerVisit, &d.DirectTraffic, &d.SearchTraffic, &d.SocialTraffic, &d.ReferralTraffic,
			&d.PaidTraffic); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

// TopDomains ranks domains by their visits since the given time.
func (r *TrafficRepository) TopDomains(ctx context.Context, since time.Time, limit int) ([]model.DomainTraffic, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT domain, SUM(visits) AS total_visits, ROUND(AVG(bounce_rate), 1)
		FROM traffic_data WHERE date >= ? GROUP BY domain ORDER BY total_visits DESC LIMIT ?`, since, limit)
	if err != nil {
		r.log.Debug("failed to rank domains by traffic.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.DomainTraffic, 0)
	for rows.Next() {
		var d model.DomainTraffic
		if err = rows.Scan(&d.Domain, &d.TotalVisits, &d.AvgBounceRate); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *TrafficRepository) Industries(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT industry_slug FROM market_data ORDER BY industry_slug")
	if err != nil {
		r.log.Debug("failed to list industries.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var slug string
		if err = rows.Scan(&slug); err != nil {
			return nil, err
		}
		out = append(out, slug)
	}

	return out, rows.Err()
}

// MarketOverview returns the largest market shares of an industry at its latest recorded date.
func (r *TrafficRepository) MarketOverview(ctx context.Context, industry string, limit int) ([]model.MarketShare, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, industry_slug, domain, market_share, traffic, growth_rate, date FROM market_data
		WHERE industry_slug = ? AND date = (SELECT MAX(date) FROM market_data WHERE industry_slug = ?)
		ORDER BY market_share DESC LIMIT ?`, industry, industry, limit)
	if err != nil {
		r.log.Debug("failed to load market overview.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.MarketShare, 0)
	for rows.Next() {
		var m model.MarketShare
		if err = rows.Scan(&m.ID, &m.IndustrySlug, &m.Domain, &m.MarketShare, &m.Traffic, &m.GrowthRate,
			&m.Date); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *TrafficRepository) MarketTrend(ctx context.Context, domain string,
	since time.Time) ([]model.MarketTrendPoint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, market_share, traffic FROM market_data WHERE domain = ? AND date >= ? ORDER BY date ASC`,
		domain, since)
	if err != nil {
		r.log.Debug("failed to load market trend.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.MarketTrendPoint, 0)
	for rows.Next() {
		var p model.MarketTrendPoint
		if err = rows.Scan(&p.Date, &p.MarketShare, &p.Traffic); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
