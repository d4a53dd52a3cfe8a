package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{name: "laptop keyword", question: "Cari laptop gaming 15 juta", want: "laptop"},
		{name: "indonesian computer spelling", question: "rekomendasi komputer buat kerja", want: "laptop"},
		{name: "hp shorthand", question: "hp murah", want: "smartphone"},
		{name: "handphone", question: "handphone buat ibu", want: "smartphone"},
		{name: "uppercase question", question: "LAPTOP BUAT KULIAH", want: "laptop"},
		{name: "tablet", question: "tablet untuk anak", want: "tablet"},
		{name: "headset", question: "headset gaming", want: "headphone"},
		{name: "camera english", question: "best camera for travel", want: "kamera"},
		{name: "speaker", question: "speaker bluetooth", want: "audio"},
		{name: "televisi", question: "televisi 50 inch", want: "tv"},
		{name: "drone", question: "drone dengan kamera bagus", want: "drone"},
		{name: "smartwatch", question: "smartwatch buat olahraga", want: "jam"},
		{name: "no category", question: "apa kabar", want: ""},
		{name: "empty question", question: "", want: ""},
		{name: "keyword inside longer word still matches", question: "laptopku rusak", want: "laptop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectCategory(tt.question))
		})
	}
}

func TestDetectCategoryFirstMatchWins(t *testing.T) {
	// Both categories are present; the earlier table row decides.
	assert.Equal(t, "laptop", detectCategory("laptop atau smartphone ya"))
	assert.Equal(t, "laptop", detectCategory("smartphone atau laptop ya"))
}

func TestDetectMaxPrice(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     int64
	}{
		{name: "juta with space", question: "Cari laptop gaming 15 juta", want: 15_000_000},
		{name: "juta without space", question: "hp 5juta yang bagus", want: 5_000_000},
		{name: "murah default", question: "hp murah", want: 5_000_000},
		{name: "budget default", question: "laptop budget buat kuliah", want: 5_000_000},
		{name: "juta beats budget default", question: "budget 10 juta buat kamera", want: 10_000_000},
		{name: "no price hints", question: "rekomendasi drone", want: 0},
		{name: "empty question", question: "", want: 0},
		{name: "uppercase juta", question: "TV 7 JUTA", want: 7_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectMaxPrice(tt.question))
		})
	}
}

func TestDetectMaxPriceIndependentOfCategory(t *testing.T) {
	// Price detection runs even when no category keyword is present.
	assert.Equal(t, int64(3_000_000), detectMaxPrice("hadiah 3 juta buat teman"))
	assert.Equal(t, "", detectCategory("hadiah 3 juta buat teman"))
}
