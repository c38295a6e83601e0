package analytics

import (
	"sort"
	"unicode/utf8"

	"github.com/ktiva/ktiva-api/internal/domain"
)

// topTagCount is how many tags TextAnalytics reports at most.
const topTagCount = 10

// TagCount pairs a tag with the number of records carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TextAnalytics summarizes a snapshot of text records.
type TextAnalytics struct {
	TotalTexts    int            `json:"totalTexts"`
	TextsByType   map[string]int `json:"textsByType"`
	AverageLength float64        `json:"averageLength"`
	MostUsedTags  []TagCount     `json:"mostUsedTags"`
}

// DailyCount is the number of improvements recorded on one calendar day.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// LearningInsights summarizes a user's learning data snapshot.
type LearningInsights struct {
	TotalImprovements int            `json:"totalImprovements"`
	AverageRating     float64        `json:"averageRating"`
	ImprovementTypes  map[string]int `json:"improvementTypes"`
	ProgressOverTime  []DailyCount   `json:"progressOverTime"`
}

// ComputeTextAnalytics aggregates per-type counts, mean content length
// (in characters), and the ten most used tags over the given records.
// A tag counts once per record no matter how often the record repeats
// it. Tags are ranked by count descending, ties broken by tag
// ascending.
func ComputeTextAnalytics(records []*domain.TextRecord) TextAnalytics {
	result := TextAnalytics{
		TextsByType:  make(map[string]int),
		MostUsedTags: []TagCount{},
	}

	totalLength := 0
	tagCounts := make(map[string]int)

	for _, record := range records {
		result.TotalTexts++
		result.TextsByType[string(record.TextType)]++
		totalLength += utf8.RuneCountInString(record.Content)
		seen := make(map[string]struct{}, len(record.Tags))
		for _, tag := range record.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tagCounts[tag]++
		}
	}

	if result.TotalTexts > 0 {
		result.AverageLength = float64(totalLength) / float64(result.TotalTexts)
	}

	ranked := make([]TagCount, 0, len(tagCounts))
	for tag, count := range tagCounts {
		ranked = append(ranked, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Tag < ranked[j].Tag
	})
	if len(ranked) > topTagCount {
		ranked = ranked[:topTagCount]
	}
	result.MostUsedTags = ranked

	return result
}

// ComputeLearningInsights aggregates a user's improvement history:
// total count, mean rating, per-type counts, and a per-day progress
// series sorted by date ascending. Days are derived by truncating each
// record's timestamp to its UTC calendar date.
func ComputeLearningInsights(records []*domain.LearningData) LearningInsights {
	result := LearningInsights{
		ImprovementTypes: make(map[string]int),
		ProgressOverTime: []DailyCount{},
	}

	ratingSum := 0
	byDay := make(map[string]int)

	for _, record := range records {
		result.TotalImprovements++
		ratingSum += record.Rating
		result.ImprovementTypes[string(record.ImprovementType)]++
		byDay[record.CreatedAt.UTC().Format("2006-01-02")]++
	}

	if result.TotalImprovements > 0 {
		result.AverageRating = float64(ratingSum) / float64(result.TotalImprovements)
	}

	progress := make([]DailyCount, 0, len(byDay))
	for date, count := range byDay {
		progress = append(progress, DailyCount{Date: date, Count: count})
	}
	sort.Slice(progress, func(i, j int) bool {
		return progress[i].Date < progress[j].Date
	})
	result.ProgressOverTime = progress

	return result
}
