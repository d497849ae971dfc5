package reportdoc

import "testing"

func TestRenderInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "plain text",
			want:  "plain text",
		},
		{
			name:  "html special characters escaped",
			input: `a < b & b > c`,
			want:  "a &lt; b &amp; b &gt; c",
		},
		{
			name:  "script tag neutralized",
			input: `<script>alert(1)</script>`,
			want:  "&lt;script&gt;alert(1)&lt;/script&gt;",
		},
		{
			name:  "bold",
			input: "Some **bold** text",
			want:  "Some <strong>bold</strong> text",
		},
		{
			name:  "multiple bold runs are non-greedy",
			input: "**a** and **b**",
			want:  "<strong>a</strong> and <strong>b</strong>",
		},
		{
			name:  "unterminated bold stays literal",
			input: "broken **bold",
			want:  "broken **bold",
		},
		{
			name:  "http link",
			input: "see [docs](http://example.com/d)",
			want:  `see <a href="http://example.com/d">docs</a>`,
		},
		{
			name:  "https link",
			input: "see [docs](https://example.com/d)",
			want:  `see <a href="https://example.com/d">docs</a>`,
		},
		{
			name:  "non-http scheme stays literal",
			input: "see [docs](ftp://example.com)",
			want:  "see [docs](ftp://example.com)",
		},
		{
			name:  "malformed link stays literal",
			input: "see [docs](",
			want:  "see [docs](",
		},
		{
			name:  "citation marker",
			input: "finding [3].",
			want:  `finding <a class="cite" href="#ref-3" aria-label="Reference 3">[3]</a>.`,
		},
		{
			name:  "out of range citation still links",
			input: "finding [99].",
			want:  `finding <a class="cite" href="#ref-99" aria-label="Reference 99">[99]</a>.`,
		},
		{
			name:  "non-numeric bracket is not a citation",
			input: "array [abc]",
			want:  "array [abc]",
		},
		{
			name:  "link label with digits is not double-matched",
			input: "[1](https://example.com/one)",
			want:  `<a href="https://example.com/one">1</a>`,
		},
		{
			name:  "bold with citation",
			input: "Some **bold** text with a citation [1].",
			want:  `Some <strong>bold</strong> text with a citation <a class="cite" href="#ref-1" aria-label="Reference 1">[1]</a>.`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RenderInline(tt.input); got != tt.want {
				t.Errorf("RenderInline(%q)\n got  %q\n want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderInlinePlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "citation marker left as escaped literal",
			input: "see [1] for details",
			want:  "see [1] for details",
		},
		{
			name:  "bold and links still render",
			input: "**CT Atlas** [site](https://example.com)",
			want:  `<strong>CT Atlas</strong> <a href="https://example.com">site</a>`,
		},
		{
			name:  "escaping still applies",
			input: "Smith & Jones",
			want:  "Smith &amp; Jones",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RenderInlinePlain(tt.input); got != tt.want {
				t.Errorf("RenderInlinePlain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
