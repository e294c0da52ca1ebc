package resolver

import (
	"strings"

	"jasper/internal/model"
)

func resolveSemantic(text string, p model.Params) *model.SemanticQuery {
	query := p.String(model.ParamQuery)
	if query == "" || !containsFold(text, query) {
		query = strings.TrimSpace(text)
	}

	folder := p.String(model.ParamFolder)
	if name := folderScope(text); name != "" {
		folder = name
	}

	return &model.SemanticQuery{
		Query:  query,
		Folder: folder,
		Limit:  p.Int(model.ParamLimit, DefaultSemanticLimit),
	}
}

// folderScope finds "in the 'x' folder" or "folder x", ignoring articles.
func folderScope(text string) string {
	m := folderScopedRe.FindStringSubmatch(text)
	if m == nil {
		m = folderNamedRe.FindStringSubmatch(text)
	}
	if m == nil || isOneOf(m[1], rejectedFolders) {
		return ""
	}
	return m[1]
}
