package http

import (
	"net/http"

	"jasper/internal/assistant"
	"jasper/internal/model"
)

// --- Request DTOs ---

type queryReq struct {
	Query string `json:"query"`
}

func (r queryReq) toInput() assistant.QueryInput {
	return assistant.QueryInput{Text: r.Query}
}

type openReq struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
}

func (r openReq) toInput() assistant.OpenInput {
	return assistant.OpenInput{ID: r.ID, Provider: r.Provider}
}

// --- Response DTOs ---

type queryResp struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Data     any    `json:"data,omitempty"`
	Category string `json:"category,omitempty"`
	Intent   string `json:"intent,omitempty"`
}

type openResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type indexStatusResp = model.IndexStatus

func (h *handler) newQueryResp(o assistant.Response) queryResp {
	resp := queryResp{
		Type:     string(o.Type),
		Content:  o.Content,
		Category: o.Category,
		Intent:   string(o.Intent),
	}
	// Result responses always carry a list, even an empty one.
	if o.Type == assistant.ResponseResults {
		data := o.Data
		if data == nil {
			data = []model.SearchResult{}
		}
		resp.Data = data
	}
	return resp
}

// newQueryErrorResp keeps refused queries in the same shape as a backend
// error. Unexpected errors are not echoed to the client.
func newQueryErrorResp(err error) queryResp {
	if mapQueryStatus(err) == http.StatusInternalServerError {
		err = errInternal
	}
	return queryResp{Type: string(assistant.ResponseError), Content: err.Error()}
}

func (h *handler) newOpenResp(o assistant.OpenOutput) openResp {
	return openResp{Status: string(o.Status), Message: o.Message}
}
