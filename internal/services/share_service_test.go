package services_test

import (
	"strings"
	"testing"

	"bookworm/internal/services"
)

func TestShareServiceSlug(t *testing.T) {
	svc := services.NewShareService("https://bookworm.app")
	cases := []struct{ in, want string }{
		{"Jo's Books", "jo's-books"},
		{"Dusty Jackets", "dusty-jackets"},
		{"BOOKS", "books"},
		{"a  b", "a--b"}, // spaces map one-to-one, no collapsing
	}
	for _, tc := range cases {
		if got := svc.Slug(tc.in); got != tc.want {
			t.Errorf("Slug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestShareServiceItems(t *testing.T) {
	svc := services.NewShareService("https://bookworm.app/")
	items := svc.Items("Dusty Jackets")
	if len(items) != 1 {
		t.Fatalf("want one share line, got %d", len(items))
	}
	if !strings.Contains(items[0], "https://bookworm.app/store/dusty-jackets") {
		t.Fatalf("share line missing store URL: %q", items[0])
	}
	if strings.Contains(items[0], "app//store") {
		t.Fatalf("trailing slash not trimmed: %q", items[0])
	}
}
