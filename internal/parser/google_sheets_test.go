package parser

import "testing"

func TestParseMenuRows(t *testing.T) {
	rows := [][]interface{}{
		{"Name", "Description", "Price", "Category", "Image", "Available"},
		{"Caesar Salad", "Romaine, parmesan", "8.50", "Starters", "https://example.com/salad.jpg", "TRUE"},
		{"Lemonade", "", " 3.75 ", "Drinks"},
		{},
		{"", "", "", ""},
		{"Mystery", "", "free", "Mains"},
		{"Refund", "", "-2", "Mains"},
		{"Ghost", "", "NaN", "Mains"},
		{"Big", "", "Inf", "Mains"},
		{"Bigger", "", "Infinity", "Mains"},
		{"Owed", "", "-Inf", "Mains"},
		{"No Category", "", "4"},
		{"Sorbet", "", "5", "Desserts", "", "false"},
	}

	items, skipped := ParseMenuRows(rows)

	if skipped != 7 {
		t.Errorf("skipped = %d, want 7", skipped)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}

	salad := items[0]
	if salad.Name != "Caesar Salad" || salad.Price != 8.5 || salad.Category != "Starters" {
		t.Errorf("salad = %+v", salad)
	}
	if salad.Description == nil || *salad.Description != "Romaine, parmesan" {
		t.Errorf("salad description = %v", salad.Description)
	}
	if salad.ImageURL == nil || !salad.IsAvailable {
		t.Errorf("salad image/availability = %v/%v", salad.ImageURL, salad.IsAvailable)
	}

	lemonade := items[1]
	if lemonade.Price != 3.75 || lemonade.Description != nil || lemonade.ImageURL != nil || !lemonade.IsAvailable {
		t.Errorf("lemonade = %+v", lemonade)
	}

	if items[2].IsAvailable {
		t.Error("sorbet should be unavailable")
	}
}

func TestParseMenuRowsHeaderOnly(t *testing.T) {
	items, skipped := ParseMenuRows([][]interface{}{{"Name", "Description", "Price", "Category"}})
	if len(items) != 0 || skipped != 0 {
		t.Errorf("items = %d, skipped = %d", len(items), skipped)
	}
}
