package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-spark/config"
	"social-spark/spark"
)

func TestMarkdown(t *testing.T) {
	html, err := Markdown("Powered by [Ollama](https://ollama.com)")
	require.NoError(t, err)
	assert.Contains(t, string(html), `<a href="https://ollama.com">Ollama</a>`)

	html, err = Markdown("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")

	html, err = Markdown("  ")
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestRenderIndex(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	r, err := NewRenderer(config.Default().Page)
	require.NoError(t, err)

	page := r.Page(FormFromRequest(spark.Request{
		Topic:    "coffee <launch>",
		Platform: spark.PlatformLinkedIn,
		Tone:     spark.ToneHumorous,
		Count:    4,
	}))
	page.Generated = true
	page.Ideas = []string{"Idea A", "Idea B"}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, IndexTemplate, page))
	out := buf.String()

	assert.Contains(t, out, "Social Spark AI")
	assert.Contains(t, out, "coffee &lt;launch&gt;")
	assert.Contains(t, out, `<option value="LinkedIn" selected>`)
	assert.Contains(t, out, `<option value="Humorous" selected>`)
	assert.Contains(t, out, `value="4"`)
	assert.Contains(t, out, "Your Ideas:")
	assert.Contains(t, out, ">Idea 1</label>")
	assert.Contains(t, out, ">Idea 2</label>")
	assert.Contains(t, out, ">Idea B</textarea>")
	assert.Contains(t, out, "Sparking creativity...")
	assert.NotContains(t, out, NoIdeasNotice)
}

func TestRenderIndexGeneratedWithoutIdeas(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	r, err := NewRenderer(config.Default().Page)
	require.NoError(t, err)

	page := r.Page(FormFromRequest(spark.DefaultRequest()))
	page.Generated = true

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, IndexTemplate, page))
	assert.Contains(t, buf.String(), "Your Ideas:")
	assert.Contains(t, buf.String(), NoIdeasNotice)
	assert.NotContains(t, buf.String(), `id="idea-1"`)
}

func TestRenderIndexWarningOnly(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	r, err := NewRenderer(config.Default().Page)
	require.NoError(t, err)

	page := r.Page(FormFromRequest(spark.DefaultRequest()))
	page.Warning = spark.EmptyTopicWarning

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, IndexTemplate, page))
	assert.Contains(t, buf.String(), "Please tell me what your post is about!")
	assert.NotContains(t, buf.String(), "Your Ideas:")
}
