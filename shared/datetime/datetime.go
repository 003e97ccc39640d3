package datetime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"campusbook/shared/timezone"
)

// Layout is the naive local date-time wire format shared with the booking
// frontend. No zone offset travels with it; producer and consumer agree on
// the application timezone.
const Layout = "2006-01-02T15:04:05"

// DateLayout is the calendar-date half of Layout.
const DateLayout = "2006-01-02"

// ClockLayout is the time-of-day half of Layout, without seconds.
const ClockLayout = "15:04"

// Local is a naive local date-time. Bookings are matched against timetable
// slots by exact equality of the Layout-formatted string, so Local always
// formats and parses in the application timezone at second precision.
type Local struct {
	time.Time
}

func New(t time.Time) Local {
	return Local{Time: timezone.ToAppTime(t).Truncate(time.Second)}
}

// Parse reads a Layout string in the application timezone.
func Parse(value string) (Local, error) {
	t, err := timezone.Parse(Layout, value)
	if err != nil {
		return Local{}, fmt.Errorf("failed to parse local date-time %q: %w", value, err)
	}

	return Local{Time: t}, nil
}

// FromSlot reconstructs a slot key from a calendar date and a clock time,
// the same concatenation the timetable grid uses.
func FromSlot(date, clock string) (Local, error) {
	return Parse(date + "T" + clock + ":00")
}

func (l Local) String() string {
	return timezone.Format(l.Time, Layout)
}

// Equal reports whether two local date-times name the same wire instant.
// Comparison is over the formatted string, preserving the grid's
// exact-match contract.
func (l Local) Equal(other Local) bool {
	return l.String() == other.String()
}

func (l Local) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *Local) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*l = Local{}

		return nil
	}

	parsed, err := Parse(value)
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}

func (l Local) Value() (driver.Value, error) {
	return l.Time, nil
}

func (l *Local) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*l = New(v)

		return nil
	case []byte:
		return l.scanString(string(v))
	case string:
		return l.scanString(v)
	case nil:
		*l = Local{}

		return nil
	default:
		return fmt.Errorf("cannot scan %T into datetime.Local", src)
	}
}

func (l *Local) scanString(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}
