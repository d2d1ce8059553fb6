package domain

import (
	"reflect"
	"testing"
)

func TestValidCategory(t *testing.T) {
	tests := []struct {
		name  string
		cat   string
		valid bool
	}{
		{"valid all", "all", true},
		{"valid hardware", "hardware", true},
		{"valid software", "software", true},
		{"valid iot", "iot", true},
		{"valid robotics", "robotics", true},
		{"valid wearables", "wearables", true},
		{"valid audio", "audio", true},
		{"valid tools", "tools", true},
		{"capitalized still valid", "Hardware", true},
		{"invalid empty", "", false},
		{"invalid unknown", "biotech", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCategory(tt.cat); got != tt.valid {
				t.Errorf("ValidCategory(%q) = %v, want %v", tt.cat, got, tt.valid)
			}
		})
	}
}

func TestCategoriesStartWithAll(t *testing.T) {
	if Categories[0] != "all" {
		t.Errorf("Categories[0] = %q, want %q", Categories[0], "all")
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty string", "", nil},
		{"single tag", "esp32", []string{"esp32"}},
		{"two tags", "esp32,sensors", []string{"esp32", "sensors"}},
		{"whitespace trimmed", " esp32 , sensors ", []string{"esp32", "sensors"}},
		{"empty segments dropped", "a,,b", []string{"a", "b"}},
		{"only commas", ",,,", nil},
		{"trailing comma", "pcb,", []string{"pcb"}},
		{"whitespace only segment", "pcb, ,led", []string{"pcb", "led"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHasTag(t *testing.T) {
	p := Project{Tags: []string{"Hardware", "esp32"}}

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{"exact match", "esp32", true},
		{"case insensitive", "hardware", true},
		{"upper query", "ESP32", true},
		{"missing tag", "software", false},
		{"empty tag", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.HasTag(tt.tag); got != tt.want {
				t.Errorf("HasTag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestHasTagNilTags(t *testing.T) {
	p := Project{}
	if p.HasTag("anything") {
		t.Error("HasTag on project without tags = true, want false")
	}
}
