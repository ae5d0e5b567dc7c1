package guide

import "github.com/kissandost/backend/internal/i18n"

// Category groups reference guides in the offline library.
type Category string

const (
	CategoryCalendar     Category = "calendar"
	CategoryDiseaseChart Category = "disease_chart"
	CategoryGeneral      Category = "general"
)

// Localized maps every supported language to a translation of one string.
type Localized map[i18n.Language]string

// For resolves the text for a language, falling back to English.
func (l Localized) For(lang i18n.Language) string {
	if s, ok := l[lang]; ok {
		return s
	}
	return l[i18n.English]
}

// Guide is one downloadable reference document. Titles and content ship
// in all three languages so the client can store them for offline use.
type Guide struct {
	ID       string    `json:"id"`
	Category Category  `json:"category"`
	Title    Localized `json:"title"`
	Content  Localized `json:"content"`
}

// Seed provides the bundled reference library.
func Seed() []Guide {
	return []Guide{
		{
			ID:       "guide_1",
			Category: CategoryCalendar,
			Title: Localized{
				i18n.English: "Wheat Sowing Calendar",
				i18n.Urdu:    "گندم کی کاشت کا کیلنڈر",
				i18n.Punjabi: "کنک بیجن دا ٹائم",
			},
			Content: Localized{
				i18n.English: "Best time: Nov 1 - Nov 30.\nSeed Rate: 50kg/acre.\nFertilizer: 1 Bag DAP at sowing.",
				i18n.Urdu:    "بہترین وقت: 1 نومبر - 30 نومبر۔\nبیج کی شرح: 50 کلوگرام فی ایکڑ۔\nکھاد: بوائی کے وقت 1 بوری ڈی اے پی۔",
				i18n.Punjabi: "سب توں اچھا ٹائم: 1 توں 30 نومبر۔\nبیج: 50 کلو فی ایکڑ۔\nکھاد: 1 بوری ڈی اے پی۔",
			},
		},
		{
			ID:       "guide_2",
			Category: CategoryDiseaseChart,
			Title: Localized{
				i18n.English: "Common Rice Diseases",
				i18n.Urdu:    "چاول کی عام بیماریاں",
				i18n.Punjabi: "چاول دیاں بیماریاں",
			},
			Content: Localized{
				i18n.English: "1. Blast: Brown spots on leaves.\n2. Bacterial Blight: Yellowing leaf tips.\nUse Copper Fungicide for Blight.",
				i18n.Urdu:    "1. بلاسٹ: پتوں پر بھورے دھبے۔\n2. بیکٹیریل بلائٹ: پتوں کے سروں کا پیلا ہونا۔\nبلائٹ کے لیے کاپر فنگسائڈ استعمال کریں۔",
				i18n.Punjabi: "1. بلاسٹ: پتیاں تے بھورے نشان۔\n2. بلائٹ: پتیاں دے کنارے پیلے۔\nکاپر والی دوائی ورتو۔",
			},
		},
	}
}
