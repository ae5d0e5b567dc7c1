package symptom

import (
	"github.com/kissandost/backend/internal/i18n"
	"github.com/kissandost/backend/internal/model/guide"
)

// Seed provides the bundled symptom tables for the offline checker.
func Seed() []CropSymptoms {
	return []CropSymptoms{
		{
			Crop: "Wheat",
			Symptoms: []Symptom{
				{
					ID: "w1",
					Description: guide.Localized{
						i18n.English: "Yellow leaves",
						i18n.Urdu:    "پتے پیلے ہو رہے ہیں",
						i18n.Punjabi: "پتر پیلے ہو رہے نیں",
					},
					PossibleIssue: guide.Localized{
						i18n.English: "Nitrogen Deficiency",
						i18n.Urdu:    "نائٹروجن کی کمی",
						i18n.Punjabi: "یوریا دی کمی",
					},
					PreliminaryAction: guide.Localized{
						i18n.English: "Apply Urea irrigation.",
						i18n.Urdu:    "یوریا کھاد پانی کے ساتھ دیں۔",
						i18n.Punjabi: "پانی لا کے یوریا سٹ دو۔",
					},
				},
				{
					ID: "w2",
					Description: guide.Localized{
						i18n.English: "Orange dust on leaves",
						i18n.Urdu:    "پتوں پر نارنجی پاؤڈر",
						i18n.Punjabi: "پتیاں تے زنگ",
					},
					PossibleIssue: guide.Localized{
						i18n.English: "Rust Disease",
						i18n.Urdu:    "رسٹ (زنگ) کی بیماری",
						i18n.Punjabi: "رسٹ دی بیماری",
					},
					PreliminaryAction: guide.Localized{
						i18n.English: "Spray Propiconazole immediately.",
						i18n.Urdu:    "فوری طور پر پروپیکونازول کا سپرے کریں۔",
						i18n.Punjabi: "پروپیکونازول دا سپرے کرو۔",
					},
				},
			},
		},
		{
			Crop: "Rice",
			Symptoms: []Symptom{
				{
					ID: "r1",
					Description: guide.Localized{
						i18n.English: "Brown spots",
						i18n.Urdu:    "بھورے دھبے",
						i18n.Punjabi: "بھورے داغ",
					},
					PossibleIssue: guide.Localized{
						i18n.English: "Brown Spot Disease",
						i18n.Urdu:    "براؤن سپاٹ بیماری",
						i18n.Punjabi: "براؤن سپاٹ",
					},
					PreliminaryAction: guide.Localized{
						i18n.English: "Balanced fertilizer usage.",
						i18n.Urdu:    "متوازن کھاد کا استعمال کریں۔",
						i18n.Punjabi: "کھاد دا صحیح استعمال کرو۔",
					},
				},
			},
		},
	}
}
