package model

const (
	MinutesPerDay        = 24 * 60
	DefaultSleepMinutes  = 480
	DefaultBufferMinutes = 120

	DayLayout = "2006-01-02"
)

// Segment is one block of time attributed to a role. RoleID is not checked
// against the role registry.
type Segment struct {
	RoleID  int     `json:"roleId"`
	Minutes int     `json:"minutes" validate:"gte=0,lte=1440"`
	Note    *string `json:"note,omitempty"`
}

// DayLog is the time allocation of one user on one calendar day.
// Segments keep insertion order.
type DayLog struct {
	UserID        string    `json:"userId" validate:"required"`
	Day           string    `json:"day" validate:"required,datetime=2006-01-02"`
	SleepMinutes  int       `json:"sleepMinutes" validate:"gte=0,lte=1440"`
	BufferMinutes int       `json:"bufferMinutes" validate:"gte=0,lte=1440"`
	Segments      []Segment `json:"segments" validate:"dive"`
}

func NewDayLog(userID, day string) *DayLog {
	return &DayLog{
		UserID:        userID,
		Day:           day,
		SleepMinutes:  DefaultSleepMinutes,
		BufferMinutes: DefaultBufferMinutes,
		Segments:      []Segment{},
	}
}

// DayKey is the "<userId>:<day>" key day logs are stored under.
func DayKey(userID, day string) string {
	return userID + ":" + day
}

func (l *DayLog) Key() string {
	return DayKey(l.UserID, l.Day)
}

func (l *DayLog) Clone() *DayLog {
	c := *l
	c.Segments = make([]Segment, len(l.Segments))
	for i, s := range l.Segments {
		c.Segments[i] = s
		if s.Note != nil {
			note := *s.Note
			c.Segments[i].Note = &note
		}
	}
	return &c
}
