package template_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/render/http/template"
)

func TestParseExceptionTmpl(t *testing.T) {
	// Arrange
	p := template.NewParser()

	// Act
	tmpl, err := p.Parse(template.ExceptionTmpl)

	// Assert
	require.Nil(t, err)

	b := new(bytes.Buffer)
	data := map[string]any{
		"Contact": "Please contact us at support@example.com.",
		"Error":   "the teapot tipped over",
	}
	require.Nil(t, tmpl.Execute(b, data))

	actual := b.String()
	require.Contains(t, actual, "Something went wrong")
	require.Contains(t, actual, "the teapot tipped over")
	require.Contains(t, actual, "Please contact us at support@example.com.")
}

func TestParseNoFiles(t *testing.T) {
	tcs := []struct {
		name string
		fps  []string
	}{
		{"None", nil},
		{"Empty-Strings", []string{"", ""}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			p := template.NewParser()
			_, err := p.Parse(tc.fps...)
			require.ErrorIs(t, err, template.ErrNoFiles)
		})
	}
}

func TestParseWithFS(t *testing.T) {
	// Arrange
	fsys := fstest.MapFS{
		"custom.tmpl": &fstest.MapFile{
			Data: []byte(`<h1>{{upper .Error}}</h1>`),
		},
	}
	p := template.NewParser(
		template.WithFS(fsys),
		template.WithFn("upper", strings.ToUpper),
	)

	// Act
	tmpl, err := p.Parse("custom.tmpl")

	// Assert
	require.Nil(t, err)

	b := new(bytes.Buffer)
	require.Nil(t, tmpl.Execute(b, map[string]any{"Error": "kaboom"}))
	require.Equal(t, "<h1>KABOOM</h1>", b.String())
}

func TestParseAddFn(t *testing.T) {
	fsys := fstest.MapFS{
		"fn.tmpl": &fstest.MapFile{Data: []byte(`{{greet}}`)},
	}
	p := template.NewParser(template.WithFS(fsys))
	p.AddFn("greet", func() string { return "hello" })

	tmpl, err := p.Parse("fn.tmpl")
	require.Nil(t, err)

	b := new(bytes.Buffer)
	require.Nil(t, tmpl.Execute(b, nil))
	require.Equal(t, "hello", b.String())
}
