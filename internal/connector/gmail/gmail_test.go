package gmail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jasper/internal/connector"
	"jasper/internal/model"
	"jasper/pkg/gmail"
	"jasper/pkg/log"
)

type fakeSearcher struct {
	msgs []gmail.Message
	err  error
	got  gmail.SearchRequest
}

func (f *fakeSearcher) Search(_ context.Context, req gmail.SearchRequest) ([]gmail.Message, error) {
	f.got = req
	return f.msgs, f.err
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name string
		p    connector.Params
		want string
	}{
		{name: "empty", p: connector.Params{}, want: ""},
		{name: "sender", p: connector.Params{Sender: "ana"}, want: "from:(ana)"},
		{
			name: "sender and subject",
			p:    connector.Params{Sender: "ana", Subject: "budget 2026"},
			want: "from:(ana) subject:(budget 2026)",
		},
		{name: "body is quoted", p: connector.Params{Body: `say "hi"`}, want: `"say hi"`},
		{
			name: "date range is inclusive",
			p:    connector.Params{DateFrom: day(2026, 3, 1), DateTo: day(2026, 3, 31)},
			want: "after:2026/03/01 before:2026/04/01",
		},
		{name: "attachment", p: connector.Params{HasAttachment: true}, want: "has:attachment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.p))
		})
	}
}

func TestSearch(t *testing.T) {
	sent := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	fake := &fakeSearcher{msgs: []gmail.Message{{
		ID:      "m1",
		From:    "Ana <ana@example.com>",
		Subject: "Budget",
		Body:    "numbers",
		Date:    sent,
		Link:    "https://mail.google.com/mail/u/0/#all/m1",
	}}}
	c := New(log.NewNop(), fake)

	results, err := c.Search(context.Background(), connector.Params{Sender: "ana"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(DefaultLimit), fake.got.MaxResults)
	assert.Equal(t, "from:(ana)", fake.got.Query)

	r := results[0]
	assert.Equal(t, model.ResultKindMail, r.Kind)
	assert.Equal(t, "m1", r.ID)
	assert.Equal(t, "Ana <ana@example.com>", r.Field(model.FieldSender))
	assert.Equal(t, "numbers", r.Text())
	assert.Equal(t, "GMAIL", r.Field(model.FieldProvider))
	require.NotNil(t, r.Date)
	assert.True(t, r.Date.Equal(sent))
}

func TestSearch_Error(t *testing.T) {
	c := New(log.NewNop(), &fakeSearcher{err: errors.New("quota")})
	_, err := c.Search(context.Background(), connector.Params{Limit: 3})
	assert.Error(t, err)
}

func TestOpen_Unsupported(t *testing.T) {
	c := New(log.NewNop(), &fakeSearcher{})
	_, err := c.Open(context.Background(), "m1")
	assert.ErrorIs(t, err, connector.ErrOpenUnsupported)
}
