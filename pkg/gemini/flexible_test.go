package gemini

import "testing"

func TestUnmarshalFlexible(t *testing.T) {
	type choice struct {
		Product string `json:"product"`
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid json",
			input: `{"product":"Watch"}`,
			want:  "Watch",
		},
		{
			name:  "double encoded",
			input: `"{\"product\":\"Watch\"}"`,
			want:  "Watch",
		},
		{
			name:  "markdown fence",
			input: "```json\n{\"product\":\"Watch\"}\n```",
			want:  "Watch",
		},
		{
			name:  "unquoted key",
			input: `{product: "Watch"}`,
			want:  "Watch",
		},
		{
			name:  "trailing comma",
			input: `{"product":"Watch",}`,
			want:  "Watch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got choice
			if err := UnmarshalFlexible(tt.input, &got); err != nil {
				t.Fatalf("UnmarshalFlexible() error = %v", err)
			}
			if got.Product != tt.want {
				t.Fatalf("product = %q, want %q", got.Product, tt.want)
			}
		})
	}
}

func TestUnmarshalFlexibleUnrecoverable(t *testing.T) {
	var out map[string]any
	if err := UnmarshalFlexible("certainly! here is prose with no structure at all", &out); err == nil {
		t.Fatalf("expected error for non-json input, got %v", out)
	}
}
