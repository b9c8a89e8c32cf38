package models

// Teacher is one entry of the structured teacher list attached to a lesson.
type Teacher struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Auditory carries an HTML-bearing title as delivered by the upstream
// service, plus a color tag used for highlighting.
type Auditory struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

// RawLesson mirrors one lesson entry of the upstream grid. Field names
// follow the upstream wire format exactly.
type RawLesson struct {
	Subject      string     `json:"sbj"`
	Teacher      string     `json:"teacher"`
	Teachers     []Teacher  `json:"teachers"`
	DateRange    string     `json:"dts"`
	DateFrom     string     `json:"df"`
	DateTo       string     `json:"dt"`
	Auditories   []Auditory `json:"auditories"`
	ShortRooms   []string   `json:"shortRooms"`
	Location     string     `json:"location"`
	Type         string     `json:"type"`
	Week         string     `json:"week"`
	Align        string     `json:"align"`
	ExternalLink *string    `json:"e_link"`
}

// DayGrid maps a slot key ("1".."7") to the lessons scheduled in that slot.
type DayGrid map[string][]RawLesson

// ScheduleGrid maps a day key ("1".."6", Monday to Saturday) to its DayGrid.
type ScheduleGrid map[string]DayGrid

// GroupInfo describes the group whose schedule was requested.
type GroupInfo struct {
	Title    string `json:"title"`
	Course   int    `json:"course"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Evening  int    `json:"evening"`
	Comment  string `json:"comment"`
}

// ScheduleResponse is the upstream envelope. Only Status == "ok" marks a
// usable response; any other value is an upstream failure even when the
// transport call itself succeeded.
type ScheduleResponse struct {
	Status    string       `json:"status"`
	Grid      ScheduleGrid `json:"grid"`
	Group     GroupInfo    `json:"group"`
	IsSession bool         `json:"isSession"`
}

// ScheduleCacheEntry is the persisted cache record for one group: the full
// upstream envelope plus the millisecond epoch timestamp of retrieval.
type ScheduleCacheEntry struct {
	Data     *ScheduleResponse `json:"data"`
	CachedAt int64             `json:"cached_at"`
}
