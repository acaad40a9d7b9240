package note

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		in     NewNote
		fields []string
	}{
		{name: "valid", in: NewNote{Title: "groceries", Content: "milk"}},
		{name: "title at limit", in: NewNote{Title: strings.Repeat("a", 200), Content: "c"}},
		{name: "multibyte title at limit", in: NewNote{Title: strings.Repeat("é", 200), Content: "c"}},
		{name: "missing title", in: NewNote{Content: "c"}, fields: []string{"title"}},
		{name: "missing content", in: NewNote{Title: "t"}, fields: []string{"content"}},
		{name: "empty", in: NewNote{}, fields: []string{"title", "content"}},
		{name: "title too long", in: NewNote{Title: strings.Repeat("a", 201), Content: "c"}, fields: []string{"title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			got := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				got = append(got, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestTrimmedBlankFailsValidation(t *testing.T) {
	n := NewNote{Title: "   ", Content: "\n\t"}.trimmed()

	var verrs ValidationErrors
	require.ErrorAs(t, Validate(n), &verrs)
	assert.Len(t, verrs, 2)
	assert.Contains(t, verrs.Error(), "title")
}
