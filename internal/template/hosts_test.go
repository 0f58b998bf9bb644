package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"whatsapp-studio/internal/template"
	templatemocks "whatsapp-studio/internal/template/mocks"
)

func TestWrapSelection(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		style      template.Style
		want       string
		wantCursor int
	}{
		{name: "bold word", text: "Hello world", start: 6, end: 11, style: template.StyleBold, want: "Hello *world*", wantCursor: 13},
		{name: "italic", text: "Hello world", start: 0, end: 5, style: template.StyleItalic, want: "_Hello_ world", wantCursor: 7},
		{name: "strikethrough", text: "old price", start: 0, end: 3, style: template.StyleStrikethrough, want: "~old~ price", wantCursor: 5},
		{name: "monospace", text: "code", start: 0, end: 4, style: template.StyleMonospace, want: "```code```", wantCursor: 10},
		{name: "empty selection", text: "ab", start: 1, end: 1, style: template.StyleBold, want: "a**b", wantCursor: 3},
		{name: "reversed offsets", text: "Hello world", start: 11, end: 6, style: template.StyleBold, want: "Hello *world*", wantCursor: 13},
		{name: "clamped", text: "Hi", start: -3, end: 50, style: template.StyleBold, want: "*Hi*", wantCursor: 4},
		{name: "multibyte", text: "olá mundo", start: 0, end: 3, style: template.StyleBold, want: "*olá* mundo", wantCursor: 5},
		{name: "unknown style", text: "Hi", start: 0, end: 2, style: "underline", want: "Hi", wantCursor: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cursor := template.WrapSelection(tt.text, tt.start, tt.end, tt.style)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCursor, cursor)
		})
	}
}

func TestApplyStyleUsesHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := templatemocks.NewMockTextEditingHost(ctrl)

	host.EXPECT().Selection().Return(6, 11)
	host.EXPECT().Text().Return("Hello world")
	host.EXPECT().Replace("Hello *world*", 13)

	template.ApplyStyle(host, template.StyleBold)
}

func TestInsertVariable(t *testing.T) {
	buf := template.NewTextBuffer("Hi , your code is ready", 3, 3)
	assert.Equal(t, "1", template.InsertVariable(buf))
	assert.Equal(t, "Hi {{1}}, your code is ready", buf.Text())

	start, end := buf.Selection()
	assert.Equal(t, 8, start)
	assert.Equal(t, 8, end)

	buf = template.NewTextBuffer("Hi {{1}}, code  today", 15, 15)
	assert.Equal(t, "2", template.InsertVariable(buf))
	assert.Equal(t, "Hi {{1}}, code {{2}} today", buf.Text())
}

func TestTextBufferApplyStyle(t *testing.T) {
	buf := template.NewTextBuffer("Hello world", 6, 11)
	template.ApplyStyle(buf, template.StyleItalic)
	assert.Equal(t, "Hello _world_", buf.Text())
	start, end := buf.Selection()
	assert.Equal(t, 13, start)
	assert.Equal(t, 13, end)
}
