package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    language.Tag
		wantErr bool
	}{
		{name: "empty falls back to english", input: "", want: language.English},
		{name: "english", input: "en", want: language.English},
		{name: "american english", input: "en-US", want: language.English},
		{name: "brazilian portuguese", input: "pt-BR", want: language.BrazilianPortuguese},
		{name: "plain portuguese", input: "pt", want: language.BrazilianPortuguese},
		{name: "garbage", input: "not a tag!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPrinter(t *testing.T) {
	t.Run("english prints the key", func(t *testing.T) {
		p := NewPrinter(language.English)
		assert.Equal(t, "Task created.", p.Sprintf(MsgCreated))
		assert.Equal(t, "3 task(s)", p.Sprintf(TextTaskCount, 3))
	})

	t.Run("portuguese uses the catalog", func(t *testing.T) {
		p := NewPrinter(language.BrazilianPortuguese)
		assert.Equal(t, "Tarefa criada.", p.Sprintf(MsgCreated))
		assert.Equal(t, "Minhas Tarefas", p.Sprintf(TextHeading))
		assert.Equal(t, "CONCLUÍDOS", p.Sprintf(TextFilterCompleted))
		assert.Equal(t, "2 tarefa(s)", p.Sprintf(TextTaskCount, 2))
	})

	t.Run("every key has a translation", func(t *testing.T) {
		p := NewPrinter(language.BrazilianPortuguese)
		for key, want := range ptBR {
			if key == TextTaskCount {
				continue
			}
			assert.Equal(t, want, p.Sprintf(key), key)
		}
	})
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		tag  language.Tag
		want string
	}{
		{name: "rfc3339 english", raw: "2025-03-04T10:00:00Z", tag: language.English, want: "3/4/2025"},
		{name: "rfc3339 portuguese", raw: "2025-03-04T10:00:00Z", tag: language.BrazilianPortuguese, want: "04/03/2025"},
		{name: "millisecond precision", raw: "2025-12-31T23:59:59.123Z", tag: language.English, want: "12/31/2025"},
		{name: "date only", raw: "2025-01-02", tag: language.English, want: "1/2/2025"},
		{name: "unparseable passes through", raw: "yesterday", tag: language.English, want: "yesterday"},
		{name: "empty", raw: "", tag: language.English, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.raw, tt.tag, time.UTC))
		})
	}
}
