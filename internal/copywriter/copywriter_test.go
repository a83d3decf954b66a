package copywriter

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	mu      sync.Mutex
	text    string
	list    string
	err     error
	prompts []string
}

func (f *fakeModel) Generate(_ context.Context, prompt string, listOutput bool) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if listOutput {
		return f.list, nil
	}
	return f.text, nil
}

func TestDisabledWriterReturnsPlaceholders(t *testing.T) {
	w, err := New(context.Background(), Config{})
	require.NoError(t, err)

	assert.False(t, w.Enabled())
	assert.Equal(t, FailedDescription, w.Description(context.Background(), "قميص", "men"))
	assert.Equal(t, []string{}, w.Specs(context.Background(), "قميص"))
}

func TestDescription(t *testing.T) {
	m := &fakeModel{text: "  قميص مريح وأنيق  "}
	w := &Writer{model: m}

	assert.Equal(t, "قميص مريح وأنيق", w.Description(context.Background(), "قميص", "men"))
	require.Len(t, m.prompts, 1)
	assert.True(t, strings.Contains(m.prompts[0], `"قميص"`) && strings.Contains(m.prompts[0], `"men"`))
}

func TestDescriptionFallbacks(t *testing.T) {
	w := &Writer{model: &fakeModel{text: ""}}
	assert.Equal(t, EmptyDescription, w.Description(context.Background(), "قميص", "men"))

	w = &Writer{model: &fakeModel{err: errors.New("quota exceeded")}}
	assert.Equal(t, FailedDescription, w.Description(context.Background(), "قميص", "men"))
}

func TestSpecs(t *testing.T) {
	w := &Writer{model: &fakeModel{list: `["قطن 100%","مريح","ألوان ثابتة"]`}}
	assert.Equal(t, []string{"قطن 100%", "مريح", "ألوان ثابتة"}, w.Specs(context.Background(), "قميص"))
}

func TestSpecsFallbacks(t *testing.T) {
	cases := map[string]*fakeModel{
		"error":    {err: errors.New("boom")},
		"not json": {list: "cotton, comfy"},
		"empty":    {list: ""},
		"null":     {list: "null"},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			w := &Writer{model: m}
			assert.Equal(t, []string{}, w.Specs(context.Background(), "قميص"))
		})
	}
}

func TestDraftRunsBoth(t *testing.T) {
	m := &fakeModel{text: "وصف", list: `["a","b","c"]`}
	w := &Writer{model: m}

	d := w.Draft(context.Background(), "قميص", "men")
	assert.Equal(t, "وصف", d.DescriptionAr)
	assert.Equal(t, []string{"a", "b", "c"}, d.SpecsAr)
	assert.Len(t, m.prompts, 2)
}
