package resolver

import (
	"strings"

	"jasper/internal/model"
	"jasper/pkg/datemath"
)

func (r *implResolver) resolveFiles(text string, p model.Params) *model.FilesQuery {
	query := p.String(model.ParamQuery)
	if query == "" || !containsFold(text, query) {
		query = strings.TrimSpace(text)
	}
	if query == "" {
		query = p.FirstString(model.ParamSubject, model.ParamSender, model.ParamMessage, model.ParamName)
	}
	query = stripFilesPrefixes(query)

	dates := r.extractRange(text, dateFilter(text, p))
	if dates.from != nil || dates.to != nil {
		if cleaned := datemath.CleanDateString(query); cleaned != "" && containsFold(text, cleaned) {
			query = cleaned
		}
	}

	q := &model.FilesQuery{
		Query:    query,
		Limit:    p.Int(model.ParamLimit, DefaultFilesLimit),
		DateFrom: dates.from,
		DateTo:   dates.to,
	}
	if containsAny(lower(text), folderWords) {
		q.Kind = model.FileKindFolder
	}
	return q
}

func stripFilesPrefixes(query string) string {
	for _, re := range filesQueryPrefixes {
		query = strings.TrimSpace(re.ReplaceAllString(query, ""))
	}
	return query
}
