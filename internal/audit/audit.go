// Package audit summarizes the crawled urls and issues of a site audit.
package audit

import (
	"cmp"
	"math"
	"slices"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/util"
)

// Summarize counts healthy urls and issues by severity. Urls without a load time are left out of the
// average load time.
func Summarize(pages []model.AuditPage) model.AuditSummary {
	s := model.AuditSummary{TotalUrls: len(pages)}
	var loadTimes []int

	for _, p := range pages {
		if len(p.Severities) == 0 {
			s.Healthy++
		} else {
			s.WithIssues++
		}
		for _, severity := range p.Severities {
			switch severity {
			case model.SeverityError:
				s.Errors++
			case model.SeverityWarning:
				s.Warnings++
			case model.SeverityNotice:
				s.Notices++
			}
		}
		if p.LoadTimeMs != nil && *p.LoadTimeMs > 0 {
			loadTimes = append(loadTimes, *p.LoadTimeMs)
		}
	}
	s.AvgLoadTime = int(math.Round(util.Average(loadTimes)))

	return s
}

// CountByType counts issues per issue type code, most frequent first.
func CountByType(issues []model.AuditIssue) []model.IssueTypeCount {
	byCode := make(map[string]*model.IssueTypeCount)
	for _, i := range issues {
		c, ok := byCode[i.Code]
		if !ok {
			c = &model.IssueTypeCount{Code: i.Code, Name: i.Name, Severity: i.Severity, Category: i.Category}
			byCode[i.Code] = c
		}
		c.Count++
	}

	out := make([]model.IssueTypeCount, 0, len(byCode))
	for _, c := range byCode {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b model.IssueTypeCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})

	return out
}
