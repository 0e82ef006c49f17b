package markup

import (
	"reflect"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"href", "href"},
		{"class_", "class"},
		{"for_", "for"},
		{"an_attribute", "an-attribute"},
		{"data_user_id", "data-user-id"},
		{"aria_label_", "aria-label"},
		{"x__", "x-"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAttributesOrder(t *testing.T) {
	var a Attributes
	a.Set("rel", "stylesheet")
	a.Set("href", "/a.css")
	a.Set("media", "print")
	a.Set("rel", "preload")

	if got, want := a.Keys(), []string{"rel", "href", "media"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := a.Get("rel"); v != "preload" {
		t.Errorf("rel = %v, want preload", v)
	}

	a.Delete("href")
	if a.Has("href") {
		t.Error("href should be deleted")
	}
	if got, want := a.Keys(), []string{"rel", "media"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() after delete = %v, want %v", got, want)
	}
	a.Delete("missing")
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestAttributesClone(t *testing.T) {
	a := NewAttributes(Attribute{"id", "x"})
	b := a.Clone()
	b.Set("id", "y")
	b.Set("title", "t")

	if v, _ := a.Get("id"); v != "x" {
		t.Errorf("original changed: id = %v", v)
	}
	if a.Len() != 1 || b.Len() != 2 {
		t.Errorf("Len() = %d/%d, want 1/2", a.Len(), b.Len())
	}
}

func TestAttributesNil(t *testing.T) {
	var a *Attributes
	if a.Len() != 0 || a.Has("x") || a.Keys() != nil {
		t.Error("nil Attributes should behave as empty")
	}
	a.Each(func(string, any) { t.Error("Each on nil should not call fn") })
	if a.Clone().Len() != 0 {
		t.Error("Clone of nil should be empty")
	}
}
