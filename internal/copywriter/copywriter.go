package copywriter

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Placeholders shown in the admin form when generation does not succeed.
const (
	FailedDescription = "حدث خطأ أثناء محاولة توليد الوصف."
	EmptyDescription  = "عذراً، لم نتمكن من توليد الوصف حالياً."
)

// textModel is the generation backend. listOutput asks for a JSON array of
// strings instead of free text.
type textModel interface {
	Generate(ctx context.Context, prompt string, listOutput bool) (string, error)
}

type Config struct {
	APIKey string
	Model  string
}

// Writer drafts Arabic product copy for the admin form. A Writer without a
// model answers every call with the placeholders.
type Writer struct {
	model textModel
	calls singleflight.Group
}

func New(ctx context.Context, cfg Config) (*Writer, error) {
	if cfg.APIKey == "" {
		log.Printf("copywriter: no API key configured, drafting disabled")
		return &Writer{}, nil
	}
	m, err := newGeminiModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Writer{model: m}, nil
}

func (w *Writer) Enabled() bool {
	return w.model != nil
}

// Description returns short marketing copy for a product. It never fails;
// errors become FailedDescription and an empty answer EmptyDescription.
func (w *Writer) Description(ctx context.Context, name, category string) string {
	if w.model == nil {
		return FailedDescription
	}
	prompt := fmt.Sprintf("اكتب وصفاً تسويقياً جذاباً باللهجة العربية لمنتج اسمه \"%s\" في قسم \"%s\". اجعل الوصف قصيراً ومركزاً على الفوائد.", name, category)

	v, err, _ := w.calls.Do("desc\x00"+name+"\x00"+category, func() (any, error) {
		return w.model.Generate(ctx, prompt, false)
	})
	if err != nil {
		log.Printf("copywriter: description for %q failed: %v", name, err)
		return FailedDescription
	}
	text := strings.TrimSpace(v.(string))
	if text == "" {
		return EmptyDescription
	}
	return text
}

// Specs suggests three technical specs in Arabic, or none on failure.
func (w *Writer) Specs(ctx context.Context, name string) []string {
	if w.model == nil {
		return []string{}
	}
	prompt := fmt.Sprintf("اعطني قائمة بـ 3 مواصفات فنية أساسية للمنتج \"%s\" باللغة العربية.", name)

	v, err, _ := w.calls.Do("specs\x00"+name, func() (any, error) {
		return w.model.Generate(ctx, prompt, true)
	})
	if err != nil {
		log.Printf("copywriter: specs for %q failed: %v", name, err)
		return []string{}
	}
	raw := strings.TrimSpace(v.(string))
	if raw == "" {
		return []string{}
	}
	var specs []string
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		log.Printf("copywriter: specs for %q not a JSON list: %v", name, err)
		return []string{}
	}
	if specs == nil {
		return []string{}
	}
	return specs
}

type Draft struct {
	DescriptionAr string   `json:"descriptionAr"`
	SpecsAr       []string `json:"specsAr"`
}

// Draft asks for the description and the specs at the same time.
func (w *Writer) Draft(ctx context.Context, name, category string) Draft {
	var d Draft
	var g errgroup.Group
	g.Go(func() error {
		d.DescriptionAr = w.Description(ctx, name, category)
		return nil
	})
	g.Go(func() error {
		d.SpecsAr = w.Specs(ctx, name)
		return nil
	})
	_ = g.Wait()
	return d
}
