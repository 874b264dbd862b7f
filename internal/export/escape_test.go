package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "weekly report", "weekly report"},
		{"leading equals", "=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"leading plus", "+1234", "'+1234"},
		{"leading minus", "-done", "'-done"},
		{"leading at", "@here", "'@here"},
		{"leading pipe", "|cell", "'|cell"},
		{"interior equals untouched", "a=b", "a=b"},
		{"angle brackets", "<script>alert</script>", "&lt;script&gt;alert&lt;/script&gt;"},
		{"trigger and brackets", "=1<2", "'=1&lt;2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeCell(tt.in))
		})
	}
}
