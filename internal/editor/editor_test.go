package editor

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "allowed markup passes through",
			input: "<p>Un articolo <strong>importante</strong></p>",
			want:  "<p>Un articolo <strong>importante</strong></p>",
		},
		{
			name:  "script dropped with content",
			input: "<p>prima</p><script>alert('x')</script><p>dopo</p>",
			want:  "<p>prima</p><p>dopo</p>",
		},
		{
			name:  "iframe dropped with content",
			input: "<p>testo</p><iframe src=\"https://evil.example\">inner</iframe>",
			want:  "<p>testo</p>",
		},
		{
			name:  "unknown wrapper unwrapped",
			input: "<article><p>contenuto</p></article>",
			want:  "<p>contenuto</p>",
		},
		{
			name:  "b and i renamed",
			input: "<p><b>grassetto</b> e <i>corsivo</i></p>",
			want:  "<p><strong>grassetto</strong> e <em>corsivo</em></p>",
		},
		{
			name:  "link keeps http href",
			input: `<p><a href="https://example.com">link</a></p>`,
			want:  `<p><a href="https://example.com">link</a></p>`,
		},
		{
			name:  "link with javascript href becomes text",
			input: `<p><a href="javascript:alert(1)">click</a></p>`,
			want:  "<p>click</p>",
		},
		{
			name:  "mailto link allowed",
			input: `<p><a href="mailto:redazione@example.com">scrivi</a></p>`,
			want:  `<p><a href="mailto:redazione@example.com">scrivi</a></p>`,
		},
		{
			name:  "link onclick stripped",
			input: `<p><a href="https://example.com" onclick="steal()">link</a></p>`,
			want:  `<p><a href="https://example.com">link</a></p>`,
		},
		{
			name:  "image keeps src and alt",
			input: `<img src="https://example.com/foto.jpg" alt="foto">`,
			want:  `<img src="https://example.com/foto.jpg" alt="foto">`,
		},
		{
			name:  "image with data url removed",
			input: `<p>testo</p><img src="data:image/png;base64,AAAA">`,
			want:  "<p>testo</p>",
		},
		{
			name:  "palette color kept",
			input: `<p><span style="color: #ef4444">rosso</span></p>`,
			want:  `<p><span style="color: #ef4444">rosso</span></p>`,
		},
		{
			name:  "off-palette color stripped",
			input: `<p><span style="color: #123456">testo</span></p>`,
			want:  "<p>testo</p>",
		},
		{
			name:  "palette color case normalized",
			input: `<p><span style="color: #EF4444">rosso</span></p>`,
			want:  `<p><span style="color: #ef4444">rosso</span></p>`,
		},
		{
			name:  "text-align kept on paragraph",
			input: `<p style="text-align: center">centrato</p>`,
			want:  `<p style="text-align: center">centrato</p>`,
		},
		{
			name:  "invalid text-align stripped",
			input: `<p style="text-align: up">testo</p>`,
			want:  "<p>testo</p>",
		},
		{
			name:  "heading keeps alignment",
			input: `<h2 style="text-align: right">titolo</h2>`,
			want:  `<h2 style="text-align: right">titolo</h2>`,
		},
		{
			name:  "lists and blockquote survive",
			input: "<ul><li>uno</li><li>due</li></ul><blockquote>citazione</blockquote>",
			want:  "<ul><li>uno</li><li>due</li></ul><blockquote>citazione</blockquote>",
		},
		{
			name:  "void tags render without closing tag",
			input: "<p>prima</p><hr><p>dopo<br>riga</p>",
			want:  "<p>prima</p><hr><p>dopo<br>riga</p>",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q)\n  got  %q\n  want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	input := `<div><p style="text-align: center"><b>Titolo</b> <span style="color: #3b82f6">blu</span></p><script>x()</script></div>`
	first, err := Normalize(input)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Normalize(input)
		if err != nil {
			t.Fatalf("Normalize returned error: %v", err)
		}
		if again != first {
			t.Fatalf("Normalize not deterministic: %q vs %q", again, first)
		}
	}

	// Normalized output must be a fixed point.
	again, err := Normalize(first)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if again != first {
		t.Errorf("Normalize not idempotent: %q vs %q", again, first)
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "blocks separated by spaces",
			input: "<p>prima</p><p>seconda</p>",
			want:  "prima seconda",
		},
		{
			name:  "inline wrappers do not split words",
			input: "<p>he<strong>ll</strong>o world</p>",
			want:  "hello world",
		},
		{
			name:  "script content excluded",
			input: "<p>visibile</p><script>nascosto()</script>",
			want:  "visibile",
		},
		{
			name:  "empty document",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.input); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats("<p>uno due tre</p>")
	if stats.Words != 3 {
		t.Errorf("Words = %d, want 3", stats.Words)
	}
	if stats.Characters != len([]rune("uno due tre")) {
		t.Errorf("Characters = %d, want %d", stats.Characters, len("uno due tre"))
	}
	if stats.ReadingTime != 1 {
		t.Errorf("ReadingTime = %d, want 1", stats.ReadingTime)
	}

	empty := ComputeStats("<p></p>")
	if empty.Words != 0 || empty.Characters != 0 || empty.ReadingTime != 0 {
		t.Errorf("empty document stats = %+v, want zeros", empty)
	}
}
