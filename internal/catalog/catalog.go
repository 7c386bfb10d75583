// Package catalog defines the static question set for the assessment.
// The catalog is defined once at process start and never mutated.
package catalog

import "strings"

// Category identifies a lifestyle area. Category values double as question
// ids and as the vocabulary the AI provider uses to tag result points.
type Category string

const (
	CategoryExercise  Category = "exercise"
	CategoryDiet      Category = "diet"
	CategoryNutrition Category = "nutrition"
	CategorySleep     Category = "sleep"
	CategoryStress    Category = "stress"
	CategoryMental    Category = "mental"
	CategorySmoking   Category = "smoking"
	CategoryAlcohol   Category = "alcohol"
	CategorySocial    Category = "social"
)

// Question is one step of the assessment.
type Question struct {
	ID       string
	Text     string
	Options  []string
	Category Category
}

// Icon returns the display glyph for this question's category.
func (q Question) Icon() string {
	return IconFor(string(q.Category))
}

// FallbackIcon is used when a category string is not recognized.
const FallbackIcon = "◆"

var icons = map[Category]string{
	CategoryExercise:  "⚡",
	CategoryDiet:      "✿",
	CategoryNutrition: "✿",
	CategorySleep:     "☾",
	CategoryStress:    "⚠",
	CategoryMental:    "☺",
	CategorySmoking:   "⊘",
	CategoryAlcohol:   "♨",
	CategorySocial:    "♥",
}

// IconFor resolves a category string to its glyph. Unknown categories get
// the fallback glyph, never an error: the AI's category tags are advisory.
func IconFor(category string) string {
	if icon, ok := icons[Category(strings.ToLower(category))]; ok {
		return icon
	}
	return FallbackIcon
}

// Questions is the ordered assessment catalog.
var Questions = []Question{
	{
		ID:       "exercise",
		Text:     "On average, how many minutes of moderate physical activity (e.g., brisk walking, cycling) do you get per week?",
		Options:  []string{"Less than 30 minutes", "30-75 minutes", "75-150 minutes", "More than 150 minutes"},
		Category: CategoryExercise,
	},
	{
		ID:       "diet",
		Text:     "How would you describe your typical diet?",
		Options:  []string{"Mostly processed foods", "A mix of processed and whole foods", "Mostly whole foods", "Strictly whole foods"},
		Category: CategoryDiet,
	},
	{
		ID:       "nutrition",
		Text:     "How many servings of fruits and vegetables do you eat on an average day?",
		Options:  []string{"0-1 servings", "2-3 servings", "4-5 servings", "More than 5 servings"},
		Category: CategoryNutrition,
	},
	{
		ID:       "sleep",
		Text:     "On average, how many hours of quality sleep do you get per night?",
		Options:  []string{"Less than 5 hours", "5-6 hours", "7-8 hours", "More than 8 hours"},
		Category: CategorySleep,
	},
	{
		ID:       "stress",
		Text:     "How would you rate your daily stress levels?",
		Options:  []string{"Very high", "High", "Moderate", "Low"},
		Category: CategoryStress,
	},
	{
		ID:       "mental",
		Text:     "How would you rate your general mood and mental well-being?",
		Options:  []string{"Generally low or anxious", "Some ups and downs", "Mostly positive", "Very positive and resilient"},
		Category: CategoryMental,
	},
	{
		ID:       "smoking",
		Text:     "Do you smoke tobacco products?",
		Options:  []string{"Yes, daily", "Yes, occasionally", "I quit recently", "Never"},
		Category: CategorySmoking,
	},
	{
		ID:       "alcohol",
		Text:     "How often do you consume alcoholic beverages?",
		Options:  []string{"Multiple times a day", "Daily", "A few times a week", "Rarely or never"},
		Category: CategoryAlcohol,
	},
	{
		ID:       "social",
		Text:     "How satisfied are you with your social connections (friends, family, community)?",
		Options:  []string{"Not satisfied, feel isolated", "Somewhat satisfied", "Generally satisfied", "Very satisfied and connected"},
		Category: CategorySocial,
	},
}

// ByID returns the question with the given id, or nil.
func ByID(id string) *Question {
	for i := range Questions {
		if Questions[i].ID == id {
			return &Questions[i]
		}
	}
	return nil
}

// CategoryIDs returns the ordered list of question ids. This is the valid
// category vocabulary for provider responses.
func CategoryIDs() []string {
	ids := make([]string, len(Questions))
	for i, q := range Questions {
		ids[i] = q.ID
	}
	return ids
}

// HasOption reports whether value is a valid option label for question id.
func HasOption(id, value string) bool {
	q := ByID(id)
	if q == nil {
		return false
	}
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}
