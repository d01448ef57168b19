package model

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityNotice  = "notice"
)

// AuditSummary godoc
// @Description Site audit health of a project
// @Type AuditSummary
type AuditSummary struct {
	TotalUrls   int `json:"total_urls"`
	Healthy     int `json:"healthy"`
	WithIssues  int `json:"with_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Notices     int `json:"notices"`
	AvgLoadTime int `json:"avg_load_time"`
}

// AuditPage is a crawled url with the severities of its issues.
type AuditPage struct {
	ID         string
	LoadTimeMs *int
	Severities []string
}

type AuditUrl struct {
	ID            string `json:"id"`
	Url           string `json:"url"`
	StatusCode    *int   `json:"status_code"`
	WordCount     *int   `json:"word_count"`
	LoadTimeMs    *int   `json:"load_time_ms"`
	CrawlDepth    *int   `json:"crawl_depth"`
	InternalLinks *int   `json:"internal_links"`
	ExternalLinks *int   `json:"external_links"`
	IssueCount    int    `json:"issue_count"`
}

// AuditUrlFilter narrows the crawled urls of a project. A nil HasIssues keeps every url.
type AuditUrlFilter struct {
	HasIssues *bool
	Limit     int
	Offset    int
}

type AuditIssue struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Severity string  `json:"severity"`
	Category string  `json:"category"`
	Details  *string `json:"details"`
}

type IssueTypeCount struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}
