package htmltext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jasper/pkg/htmltext"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello world", want: "hello world"},
		{name: "tags", in: "<p>Hello <b>there</b></p><div>again</div>", want: "Hello there again"},
		{name: "script and style", in: "<style>p{}</style><p>a</p><script>alert(1)</script><p>b</p>", want: "a b"},
		{name: "head", in: "<html><head><title>T</title></head><body>body</body></html>", want: "body"},
		{name: "entities", in: "<p>Fish &amp; chips</p>", want: "Fish & chips"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmltext.Text(tt.in))
		})
	}
}
