package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/IliaW/rank-api/internal/model"
)

const (
	ppcKeywordSelect = `SELECT id, keyword, volume, cpc, competition, competitor_ads, trend, last_seen, ad_copies
	FROM ppc_keyword`
	adCreativeSelect = `SELECT cr.id, cr.campaign_id, cr.headline, cr.description, cr.display_url, cr.final_url,
	cr.format, cr.impressions, cr.clicks, cr.ctr, cr.first_seen, cr.last_seen FROM ad_creative cr`
)

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name AdvertisingStorage
type AdvertisingStorage interface {
	PpcKeywords(ctx context.Context, filter model.PpcKeywordFilter) ([]model.PpcKeyword, error)
	SearchPpcKeywords(ctx context.Context, query string, limit int) ([]model.PpcKeyword, error)
	Campaigns(ctx context.Context, filter model.AdCampaignFilter) ([]model.AdCampaign, error)
	Totals(ctx context.Context) (model.AdvertisingTotals, error)
	Creatives(ctx context.Context, filter model.AdCreativeFilter) ([]model.AdCreative, error)
	CompetitorCreatives(ctx context.Context, domain string, limit int) ([]model.AdCreative, error)
}

type AdvertisingRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewAdvertisingRepository(db *sql.DB, log *slog.Logger) *AdvertisingRepository {
	return &AdvertisingRepository{
		db:  db,
		log: log,
	}
}

// PpcKeywords lists paid keywords by volume.
func (r *AdvertisingRepository) PpcKeywords(ctx context.Context, filter model.PpcKeywordFilter) ([]model.PpcKeyword, error) {
	var c conditions
	c.add("volume >= ?", filter.MinVolume)
	if filter.MaxCpc != nil {
		c.add("cpc <= ?", *filter.MaxCpc)
	}
	return r.ppcKeywords(ctx, ppcKeywordSelect+c.where()+" ORDER BY volume DESC LIMIT ?",
		append(c.args, filter.Limit)...)
}

func (r *AdvertisingRepository) SearchPpcKeywords(ctx context.Context, query string,
	limit int) ([]model.PpcKeyword, error) {
	return r.ppcKeywords(ctx, ppcKeywordSelect+" WHERE keyword LIKE ? ORDER BY volume DESC LIMIT ?",
		containsPattern(query), limit)
}

func (r *AdvertisingRepository) ppcKeywords(ctx context.Context, query string, args ...any) ([]model.PpcKeyword, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Debug("failed to list ppc keywords.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.PpcKeyword, 0)
	for rows.Next() {
		k := model.PpcKeyword{Trend: []float64{}, AdCopies: []model.AdCopy{}}
		var trend, adCopies sql.NullString
		if err = rows.Scan(&k.ID, &k.Keyword, &k.Volume, &k.Cpc, &k.Competition, &k.CompetitorAds, &trend,
			&k.LastSeen, &adCopies); err != nil {
			return nil, err
		}
		if err = decodeJSON(trend, &k.Trend); err != nil {
			return nil, fmt.Errorf("ppc keyword '%s' trend: %w", k.ID, err)
		}
		if err = decodeJSON(adCopies, &k.AdCopies); err != nil {
			return nil, fmt.Errorf("ppc keyword '%s' ad copies: %w", k.ID, err)
		}
		out = append(out, k)
	}

	return out, rows.Err()
}

// Campaigns lists the newest campaigns matching the filter. Rates are left to the caller.
func (r *AdvertisingRepository) Campaigns(ctx context.Context, filter model.AdCampaignFilter) ([]model.AdCampaign, error) {
	var c conditions
	if filter.Domain != "" {
		c.add("domain LIKE ?", containsPattern(filter.Domain))
	}
	c.addIf("platform", filter.Platform)
	c.addIf("status", filter.Status)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, domain, platform, campaign_type, budget, start_date, end_date, status, impressions, clicks,
		conversions, spend FROM ad_campaign`+c.where()+` ORDER BY start_date DESC LIMIT ?`,
		append(c.args, filter.Limit)...)
	if err != nil {
		r.log.Debug("failed to list ad campaigns.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.AdCampaign, 0)
	for rows.Next() {
		var ad model.AdCampaign
		var budget sql.NullFloat64
		var endDate sql.NullTime
		if err = rows.Scan(&ad.ID, &ad.Domain, &ad.Platform, &ad.CampaignType, &budget, &ad.StartDate, &endDate,
			&ad.Status, &ad.Impressions, &ad.Clicks, &ad.Conversions, &ad.Spend); err != nil {
			return nil, err
		}
		ad.Budget = floatPtr(budget)
		ad.EndDate = timePtr(endDate)
		out = append(out, ad)
	}

	return out, rows.Err()
}

func (r *AdvertisingRepository) Totals(ctx context.Context) (model.AdvertisingTotals, error) {
	var t model.AdvertisingTotals
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(status = 'active'), 0), COALESCE(SUM(spend), 0),
		COALESCE(SUM(impressions), 0), COALESCE(SUM(clicks), 0) FROM ad_campaign`).
		Scan(&t.Campaigns, &t.ActiveCampaigns, &t.Spend, &t.Impressions, &t.Clicks)
	if err != nil {
		r.log.Debug("failed to sum ad campaigns.", slog.String("err", err.Error()))
	}

	return t, err
}

// Creatives lists creatives matching the filter by impressions.
func (r *AdvertisingRepository) Creatives(ctx context.Context, filter model.AdCreativeFilter) ([]model.AdCreative, error) {
	var c conditions
	c.addIf("cr.campaign_id", filter.CampaignID)
	c.addIf("cr.format", filter.Format)
	return r.creatives(ctx, adCreativeSelect+c.where()+" ORDER BY cr.impressions DESC LIMIT ?",
		append(c.args, filter.Limit)...)
}

// CompetitorCreatives lists the most recently seen creatives of campaigns whose domain contains domain.
func (r *AdvertisingRepository) CompetitorCreatives(ctx context.Context, domain string,
	limit int) ([]model.AdCreative, error) {
	return r.creatives(ctx, adCreativeSelect+` JOIN ad_campaign c ON c.id = cr.campaign_id
		WHERE c.domain LIKE ? ORDER BY cr.last_seen DESC LIMIT ?`, containsPattern(domain), limit)
}

func (r *AdvertisingRepository) creatives(ctx context.Context, query string, args ...any) ([]model.AdCreative, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Debug("failed to list ad creatives.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.AdCreative, 0)
	for rows.Next() {
		var cr model.AdCreative
		var description, displayUrl, finalUrl sql.NullString
		if err = rows.Scan(&cr.ID, &cr.CampaignID, &cr.Headline, &description, &displayUrl, &finalUrl, &cr.Format,
			&cr.Impressions, &cr.Clicks, &cr.Ctr, &cr.FirstSeen, &cr.LastSeen); err != nil {
			return nil, err
		}
		cr.Description = stringPtr(description)
		cr.DisplayUrl = stringPtr(displayUrl)
		cr.FinalUrl = stringPtr(finalUrl)
		out = append(out, cr)
	}

	return out, rows.Err()
}
