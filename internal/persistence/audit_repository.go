package persistence

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/IliaW/rank-api/internal/model"
)

const auditIssueSelect = `SELECT i.id, t.code, t.name, t.severity, t.category, i.details
	FROM audit_issue i JOIN audit_issue_type t ON t.id = i.issue_type_id`

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name AuditStorage
type AuditStorage interface {
	Pages(ctx context.Context, projectID string) ([]model.AuditPage, error)
	Urls(ctx context.Context, projectID string, filter model.AuditUrlFilter) ([]model.AuditUrl, error)
	ProjectIssues(ctx context.Context, projectID string) ([]model.AuditIssue, error)
	UrlIssues(ctx context.Context, auditUrlID string) ([]model.AuditIssue, error)
}

type AuditRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewAuditRepository(db *sql.DB, log *slog.Logger) *AuditRepository {
	return &AuditRepository{
		db:  db,
		log: log,
	}
}

// Pages returns every crawled url of a project with the severities of its issues.
func (r *AuditRepository) Pages(ctx context.Context, projectID string) ([]model.AuditPage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.load_time_ms, t.severity FROM audit_url u
		LEFT JOIN audit_issue i ON i.audit_url_id = u.id
		LEFT JOIN audit_issue_type t ON t.id = i.issue_type_id
		WHERE u.project_id = ? ORDER BY u.id`, projectID)
	if err != nil {
		r.log.Debug("failed to load audit pages.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	pages := make([]model.AuditPage, 0)
	for rows.Next() {
		var id string
		var loadTime sql.NullInt64
		var severity sql.NullString
		if err = rows.Scan(&id, &loadTime, &severity); err != nil {
			return nil, err
		}
		if len(pages) == 0 || pages[len(pages)-1].ID != id {
			pages = append(pages, model.AuditPage{ID: id, LoadTimeMs: intPtr(loadTime)})
		}
		if severity.Valid {
			last := &pages[len(pages)-1]
			last.Severities = append(last.Severities, severity.String)
		}
	}

	return pages, rows.Err()
}

func (r *AuditRepository) Urls(ctx context.Context, projectID string,
	filter model.AuditUrlFilter) ([]model.AuditUrl, error) {
	var c conditions
	c.add("u.project_id = ?", projectID)
	if filter.HasIssues != nil {
		exists := "EXISTS (SELECT 1 FROM audit_issue i WHERE i.audit_url_id = u.id)"
		if !*filter.HasIssues {
			exists = "NOT " + exists
		}
		c.add(exists)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.url, u.status_code, u.word_count, u.load_time_ms, u.crawl_depth, u.internal_links,
		u.external_links, (SELECT COUNT(*) FROM audit_issue i WHERE i.audit_url_id = u.id)
		FROM audit_url u`+c.where()+` ORDER BY u.crawled_at DESC LIMIT ? OFFSET ?`,
		append(c.args, filter.Limit, filter.Offset)...)
	if err != nil {
		r.log.Debug("failed to list audit urls.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.AuditUrl, 0)
	for rows.Next() {
		var u model.AuditUrl
		var status, words, loadTime, depth, internal, external sql.NullInt64
		if err = rows.Scan(&u.ID, &u.Url, &status, &words, &loadTime, &depth, &internal, &external,
			&u.IssueCount); err != nil {
			return nil, err
		}
		u.StatusCode = intPtr(status)
		u.WordCount = intPtr(words)
		u.LoadTimeMs = intPtr(loadTime)
		u.CrawlDepth = intPtr(depth)
		u.InternalLinks = intPtr(internal)
		u.ExternalLinks = intPtr(external)
		out = append(out, u)
	}

	return out, rows.Err()
}

func (r *AuditRepository) ProjectIssues(ctx context.Context, projectID string) ([]model.AuditIssue, error) {
	return r.issues(ctx, auditIssueSelect+` JOIN audit_url u ON u.id = i.audit_url_id WHERE u.project_id = ?`,
		projectID)
}

func (r *AuditRepository) UrlIssues(ctx context.Context, auditUrlID string) ([]model.AuditIssue, error) {
	return r.issues(ctx, auditIssueSelect+` WHERE i.audit_url_id = ?`, auditUrlID)
}

func (r *AuditRepository) issues(ctx context.Context, query string, args ...any) ([]model.AuditIssue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Debug("failed to load audit issues.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.AuditIssue, 0)
	for rows.Next() {
		var i model.AuditIssue
		var details sql.NullString
		if err = rows.Scan(&i.ID, &i.Code, &i.Name, &i.Severity, &i.Category, &details); err != nil {
			return nil, err
		}
		i.Details = stringPtr(details)
		out = append(out, i)
	}

	return out, rows.Err()
}
