package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ziyixi/todoview/theme"
	"github.com/ziyixi/todoview/utils"
	"github.com/ziyixi/todoview/view"
)

func TestRender(t *testing.T) {
	styles := theme.Default().Toast

	t.Run("closed banner renders nothing", func(t *testing.T) {
		out := Render(Props{Open: false, Message: "hidden"}, styles, 60)
		assert.Empty(t, out)
	})

	t.Run("message and icon per severity", func(t *testing.T) {
		tests := []struct {
			severity view.Severity
			icon     string
		}{
			{view.SeverityError, "✗"},
			{view.SeverityWarning, "!"},
			{view.SeverityInfo, "i"},
			{view.SeveritySuccess, "✓"},
		}
		for _, tt := range tests {
			t.Run(string(tt.severity), func(t *testing.T) {
				out := Render(Props{Open: true, Severity: tt.severity, Message: "hello"}, styles, 60)
				assert.Contains(t, out, tt.icon+" hello")
			})
		}
	})

	t.Run("action label is shown with its key", func(t *testing.T) {
		out := Render(Props{Open: true, Severity: view.SeverityError, Message: "boom", ActionLabel: "Reload"}, styles, 80)
		assert.Contains(t, out, "boom")
		assert.Contains(t, out, "[r] Reload")
	})

	t.Run("no action label without action", func(t *testing.T) {
		out := Render(Props{Open: true, Severity: view.SeverityInfo, Message: "ok"}, styles, 80)
		assert.NotContains(t, out, "[r]")
	})
}

func TestFromNotice(t *testing.T) {
	p := utils.NewPrinter(language.BrazilianPortuguese)

	props := FromNotice(view.Notice{
		Visible:     true,
		Severity:    view.SeverityError,
		Message:     utils.MsgLoadFailed,
		Action:      view.ActionReload,
		ActionLabel: utils.LabelReload,
	}, p)

	assert.True(t, props.Open)
	assert.Equal(t, view.SeverityError, props.Severity)
	assert.Equal(t, "Falha ao carregar as tarefas.", props.Message)
	assert.Equal(t, "Recarregar", props.ActionLabel)

	props = FromNotice(view.Notice{Visible: false, Message: utils.MsgCreated}, p)
	assert.False(t, props.Open)
	assert.Empty(t, props.ActionLabel)
}

func TestDismissAfter(t *testing.T) {
	cmd := DismissAfter(7, time.Millisecond)
	require.NotNil(t, cmd)

	msg := cmd()

	assert.Equal(t, DismissMsg{Seq: 7}, msg)
}

func TestDefaultDuration(t *testing.T) {
	assert.Equal(t, 2*time.Second, DefaultDuration)
}
