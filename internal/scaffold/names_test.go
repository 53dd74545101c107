package scaffold

import "testing"

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"widget":    "widget",
		"my_widget": "my_widget",
		"myWidget":  "my_widget",
		"MyWidget":  "my_widget",
		"my-widget": "my_widget",
	}
	for in, want := range tests {
		if got := ToSnakeCase(in); got != want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"post":     "Post",
		"Post":     "Post",
		"blogPost": "BlogPost",
	}
	for in, want := range tests {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
