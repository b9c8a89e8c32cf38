package timetable

import (
	"sort"
	"strings"
)

// Format selects the lesson delivery format to keep when filtering.
type Format string

const (
	FormatAll     Format = "all"
	FormatOnline  Format = "online"
	FormatOffline Format = "offline"
)

// FilterOptions configures the lesson filter pipeline. An empty Types set
// means "no restriction", never "exclude everything".
type FilterOptions struct {
	Types  []string
	Format Format
}

// Filter applies the type and format predicates over an already
// normalized sequence. Date validity is enforced during normalization and
// is not reapplied here. The input order is preserved and the input slice
// is left untouched.
func Filter(lessons []Lesson, options FilterOptions) []Lesson {
	result := make([]Lesson, 0, len(lessons))

	typeSet := make(map[string]struct{}, len(options.Types))
	for _, lessonType := range options.Types {
		typeSet[lessonType] = struct{}{}
	}

	for _, lesson := range lessons {
		if len(typeSet) > 0 {
			if _, ok := typeSet[lesson.Type]; !ok {
				continue
			}
		}
		switch options.Format {
		case FormatOnline:
			if !lesson.IsOnline {
				continue
			}
		case FormatOffline:
			if lesson.IsOnline {
				continue
			}
		}
		result = append(result, lesson)
	}

	return result
}

// UniqueSubjects returns the sorted set of subject names present in the
// sequence.
func UniqueSubjects(lessons []Lesson) []string {
	seen := make(map[string]struct{})
	for _, lesson := range lessons {
		seen[lesson.Subject] = struct{}{}
	}
	return sortedSet(seen)
}

// UniqueTeachers returns the sorted set of teacher names across all
// structured teacher lists.
func UniqueTeachers(lessons []Lesson) []string {
	seen := make(map[string]struct{})
	for _, lesson := range lessons {
		for _, teacher := range lesson.Teachers {
			seen[strings.TrimSpace(teacher.Name)] = struct{}{}
		}
	}
	return sortedSet(seen)
}

// UniqueTypes returns the sorted set of normalized lesson types.
func UniqueTypes(lessons []Lesson) []string {
	seen := make(map[string]struct{})
	for _, lesson := range lessons {
		seen[lesson.Type] = struct{}{}
	}
	return sortedSet(seen)
}

func sortedSet(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
