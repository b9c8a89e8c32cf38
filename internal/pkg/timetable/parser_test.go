package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/models"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
)

func newTestParser() *Parser {
	return NewParser(NewAnchorLinkParser(), constvars.DefaultRemoteLocationMarker)
}

func rawLesson(subject string) models.RawLesson {
	return models.RawLesson{
		Subject:  subject,
		Teacher:  "Иванов И.И.",
		Teachers: []models.Teacher{{ID: 1, Name: "Иванов И.И."}},
		DateFrom: "2026-02-09",
		DateTo:   "2026-06-01",
		Location: "Большая Семеновская",
		Type:     constvars.LessonTypeLecture,
	}
}

func TestParseGridOrdering(t *testing.T) {
	parser := newTestParser()

	grid := models.ScheduleGrid{
		"2": models.DayGrid{
			"1": {rawLesson("Физика")},
		},
		"1": models.DayGrid{
			"3": {rawLesson("История")},
			"1": {rawLesson("Математика"), rawLesson("Математика (подгруппа 2)")},
		},
	}

	lessons := parser.ParseGrid(grid, "")

	assert.Len(t, lessons, 4)
	assert.Equal(t, "Математика", lessons[0].Subject)
	assert.Equal(t, "Математика (подгруппа 2)", lessons[1].Subject, "ties within one slot keep the upstream list order")
	assert.Equal(t, "История", lessons[2].Subject)
	assert.Equal(t, "Физика", lessons[3].Subject)

	for i := 1; i < len(lessons); i++ {
		previous, current := lessons[i-1], lessons[i]
		if previous.DayNumber == current.DayNumber {
			assert.LessOrEqual(t, previous.SlotNumber, current.SlotNumber)
		} else {
			assert.Less(t, previous.DayNumber, current.DayNumber)
		}
	}
}

func TestParseGridIsPure(t *testing.T) {
	parser := newTestParser()

	grid := models.ScheduleGrid{
		"3": models.DayGrid{
			"2": {rawLesson("Философия")},
			"4": {rawLesson("Базы данных")},
		},
		"1": models.DayGrid{
			"1": {rawLesson("Математика")},
		},
	}

	first := parser.ParseGrid(grid, "")
	second := parser.ParseGrid(grid, "")

	assert.Equal(t, first, second, "identical input must yield identical ordered output")
}

func TestParseGridDateFilter(t *testing.T) {
	parser := newTestParser()

	lesson := rawLesson("Математика")
	grid := models.ScheduleGrid{"1": models.DayGrid{"1": {lesson}}}

	t.Run("Inside Window", func(t *testing.T) {
		assert.Len(t, parser.ParseGrid(grid, "2026-03-15"), 1)
	})

	t.Run("Window Bounds Inclusive", func(t *testing.T) {
		assert.Len(t, parser.ParseGrid(grid, lesson.DateFrom), 1)
		assert.Len(t, parser.ParseGrid(grid, lesson.DateTo), 1)
	})

	t.Run("Outside Window", func(t *testing.T) {
		assert.Empty(t, parser.ParseGrid(grid, "2026-07-01"))
		assert.Empty(t, parser.ParseGrid(grid, "2026-01-01"))
	})

	t.Run("No Filter Keeps Everything", func(t *testing.T) {
		assert.Len(t, parser.ParseGrid(grid, ""), 1)
	})
}

func TestParseGridPermissiveKeys(t *testing.T) {
	parser := newTestParser()

	grid := models.ScheduleGrid{
		"junk": models.DayGrid{
			"1": {rawLesson("Потерянная пара")},
		},
		"1": models.DayGrid{
			"x": {rawLesson("Пара без номера")},
			"2": {rawLesson("Физика")},
		},
	}

	lessons := parser.ParseGrid(grid, "")

	assert.Len(t, lessons, 3, "malformed keys must not drop lessons")
	assert.Equal(t, "Потерянная пара", lessons[0].Subject)
	assert.Equal(t, 0, lessons[0].DayNumber, "unparseable day key keeps the unresolved marker")
	assert.Equal(t, "Пара без номера", lessons[1].Subject)
	assert.Equal(t, 0, lessons[1].SlotNumber, "unparseable slot key keeps the unresolved marker")
	assert.Equal(t, "Физика", lessons[2].Subject)
}

func TestParseGridLinks(t *testing.T) {
	parser := newTestParser()

	lesson := rawLesson("Вебинар")
	lesson.Auditories = []models.Auditory{
		{Title: `<a href="https://webinar.example/one">🌐 Вебинар</a>`, Color: "#f00"},
		{Title: `до <a href="https://lms.example/a">LMS</a> и <a href="https://lms.example/b">запись</a>`, Color: "#0f0"},
	}
	grid := models.ScheduleGrid{"1": models.DayGrid{"1": {lesson}}}

	lessons := parser.ParseGrid(grid, "")

	assert.Len(t, lessons, 1)
	links := lessons[0].Links
	assert.Len(t, links, 3, "links collected in auditory order, then occurrence order")
	assert.Equal(t, Link{Href: "https://webinar.example/one", Text: "Вебинар"}, links[0], "emoji prefix is stripped from link text")
	assert.Equal(t, Link{Href: "https://lms.example/a", Text: "LMS"}, links[1])
	assert.Equal(t, Link{Href: "https://lms.example/b", Text: "запись"}, links[2])
}

func TestParseGridOnlineDetection(t *testing.T) {
	parser := newTestParser()

	parse := func(lesson models.RawLesson) Lesson {
		lessons := parser.ParseGrid(models.ScheduleGrid{"1": models.DayGrid{"1": {lesson}}}, "")
		assert.Len(t, lessons, 1)
		return lessons[0]
	}

	t.Run("Webinar Location", func(t *testing.T) {
		lesson := rawLesson("Математика")
		lesson.Location = "Webinar"
		assert.True(t, parse(lesson).IsOnline)
	})

	t.Run("Online Location Case Insensitive", func(t *testing.T) {
		lesson := rawLesson("Математика")
		lesson.Location = "ONLINE (Zoom)"
		assert.True(t, parse(lesson).IsOnline)
	})

	t.Run("Remote Location Marker", func(t *testing.T) {
		lesson := rawLesson("Математика")
		lesson.Location = constvars.DefaultRemoteLocationMarker
		assert.True(t, parse(lesson).IsOnline)
	})

	t.Run("Remote Marker Uppercased", func(t *testing.T) {
		lesson := rawLesson("Математика")
		lesson.Location = "ПД"
		assert.True(t, parse(lesson).IsOnline)
	})

	t.Run("Anchor Markup In Auditory", func(t *testing.T) {
		lesson := rawLesson("Математика")
		lesson.Auditories = []models.Auditory{{Title: `<a href="https://meet.example">встреча</a>`}}
		assert.True(t, parse(lesson).IsOnline)
	})

	t.Run("Plain Room Is Offline", func(t *testing.T) {
		lesson := rawLesson("Математика")
		lesson.Auditories = []models.Auditory{{Title: "ПК 405", Color: "#fff"}}
		assert.False(t, parse(lesson).IsOnline)
	})
}

func TestNormalizeType(t *testing.T) {
	assert.Equal(t, constvars.LessonTypePractice, NormalizeType(constvars.LessonTypePracticeEOR))
	assert.Equal(t, constvars.LessonTypeLecture, NormalizeType(constvars.LessonTypeLecture))
	assert.Equal(t, "Консультация", NormalizeType("Консультация"))
}

func TestParseGridNormalizesType(t *testing.T) {
	parser := newTestParser()

	lesson := rawLesson("Практикум")
	lesson.Type = constvars.LessonTypePracticeEOR
	grid := models.ScheduleGrid{"1": models.DayGrid{"1": {lesson}}}

	lessons := parser.ParseGrid(grid, "")

	assert.Len(t, lessons, 1)
	assert.Equal(t, constvars.LessonTypePractice, lessons[0].Type)
	assert.Equal(t, []string{constvars.LessonTypePractice}, UniqueTypes(lessons), "normalized type shows up in the derived type list")

	filtered := Filter(lessons, FilterOptions{Types: []string{constvars.LessonTypePractice}, Format: FormatAll})
	assert.Len(t, filtered, 1, "normalized type participates in filter matching")
}
