package binding

import "testing"

func TestInterpolate(t *testing.T) {
	data := map[string]any{
		"customer": map[string]any{"name": "آرش"},
		"invoice": map[string]any{
			"total": 1250,
			"items": []any{
				map[string]any{"title": "کاغذ"},
				map[string]any{"title": "جوهر"},
			},
		},
	}

	cases := []struct {
		in   string
		want string
	}{
		{"مشتری: ${customer.name}", "مشتری: آرش"},
		{"جمع: ${invoice.total}", "جمع: 1250"},
		{"اولین قلم: ${invoice.items[0].title}", "اولین قلم: کاغذ"},
		{"${ invoice.total }", "1250"},
		{"${missing.path}", "${missing.path}"},
		{"${invoice.items[9].title}", "${invoice.items[9].title}"},
		{"${invoice.items[x]}", "${invoice.items[x]}"},
		{"${}", "${}"},
		{"no placeholders", "no placeholders"},
	}
	for _, c := range cases {
		if got := Interpolate(c.in, data); got != c.want {
			t.Fatalf("Interpolate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("${a.b}", nil); got != "${a.b}" {
		t.Fatalf("nil data must leave placeholders alone, got %q", got)
	}
}

func TestInterpolateInterfaceKeyedMaps(t *testing.T) {
	data := map[any]any{"a": map[any]any{"b": "c"}}
	if got := Interpolate("${a.b}", data); got != "c" {
		t.Fatalf("interface-keyed maps must resolve, got %q", got)
	}
}
