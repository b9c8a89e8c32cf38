package timetable

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/models"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
)

// Lesson is a RawLesson annotated with its grid position and derived
// attributes. It is recomputed per request and never persisted.
type Lesson struct {
	models.RawLesson
	DayNumber  int    `json:"dayNumber"`
	SlotNumber int    `json:"slotNumber"`
	IsOnline   bool   `json:"isOnline"`
	Links      []Link `json:"links"`
}

// Parser flattens the upstream day/slot grid into an ordered lesson
// sequence.
type Parser struct {
	linkParser           LinkParser
	remoteLocationMarker string
}

func NewParser(linkParser LinkParser, remoteLocationMarker string) *Parser {
	return &Parser{
		linkParser:           linkParser,
		remoteLocationMarker: strings.ToLower(remoteLocationMarker),
	}
}

// gridKey pairs a raw map key with its parsed integer value so that
// output order never depends on map enumeration order. Keys that fail to
// parse keep number 0: the lesson is still emitted with an unresolved
// day/slot marker rather than silently dropped.
type gridKey struct {
	raw    string
	number int
}

func sortedKeys[V any](m map[string]V) []gridKey {
	keys := make([]gridKey, 0, len(m))
	for raw := range m {
		number, err := strconv.Atoi(raw)
		if err != nil {
			number = 0
		}
		keys = append(keys, gridKey{raw: raw, number: number})
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].number != keys[j].number {
			return keys[i].number < keys[j].number
		}
		return keys[i].raw < keys[j].raw
	})
	return keys
}

// ParseGrid converts the nested grid into a flat sequence sorted by
// ascending day number, then slot number; ties keep the upstream list
// order. When filterDate (ISO yyyy-mm-dd) is non-empty, only lessons
// whose validity window contains it are returned, both bounds inclusive.
func (p *Parser) ParseGrid(grid models.ScheduleGrid, filterDate string) []Lesson {
	var lessons []Lesson

	for _, dayKey := range sortedKeys(grid) {
		dayGrid := grid[dayKey.raw]
		for _, slotKey := range sortedKeys(dayGrid) {
			for _, raw := range dayGrid[slotKey.raw] {
				if filterDate != "" && !lessonActiveOn(raw, filterDate) {
					continue
				}

				var links []Link
				for _, auditory := range raw.Auditories {
					links = append(links, p.linkParser.Parse(auditory.Title)...)
				}

				lesson := Lesson{
					RawLesson:  raw,
					DayNumber:  dayKey.number,
					SlotNumber: slotKey.number,
					IsOnline:   p.isOnline(raw),
					Links:      links,
				}
				lesson.Type = NormalizeType(raw.Type)
				lessons = append(lessons, lesson)
			}
		}
	}

	sort.SliceStable(lessons, func(i, j int) bool {
		if lessons[i].DayNumber != lessons[j].DayNumber {
			return lessons[i].DayNumber < lessons[j].DayNumber
		}
		return lessons[i].SlotNumber < lessons[j].SlotNumber
	})

	return lessons
}

// lessonActiveOn reports whether date falls inside the lesson's validity
// window. ISO dates compare chronologically as strings.
func lessonActiveOn(lesson models.RawLesson, date string) bool {
	return date >= lesson.DateFrom && date <= lesson.DateTo
}

func (p *Parser) isOnline(lesson models.RawLesson) bool {
	location := strings.ToLower(lesson.Location)
	if strings.Contains(location, "webinar") || strings.Contains(location, "online") {
		return true
	}
	if location == p.remoteLocationMarker {
		return true
	}
	for _, auditory := range lesson.Auditories {
		if strings.Contains(auditory.Title, "href=") {
			return true
		}
	}
	return false
}

// NormalizeType collapses known synonym labels to their canonical form.
func NormalizeType(lessonType string) string {
	if lessonType == constvars.LessonTypePracticeEOR {
		return constvars.LessonTypePractice
	}
	return lessonType
}
