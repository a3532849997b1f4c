package feed

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// DateError возвращается, когда строка не является датой в формате RFC 2822.
type DateError struct {
	Value string
	Err   error
}

func (e *DateError) Error() string {
	if strings.TrimSpace(e.Value) == "" {
		return "date parse error: premature end of input"
	}
	return fmt.Sprintf("date parse error: %q is not an RFC 2822 date: %v", e.Value, e.Err)
}

func (e *DateError) Unwrap() error { return e.Err }

// ParseDate разбирает дату публикации строго по RFC 2822
// (например, "Tue, 03 Jun 2003 09:39:21 GMT"). Если указан день недели,
// он должен совпадать с датой. Результат всегда имеет
// фиксированное смещение из самой строки, база часовых поясов не используется.
func ParseDate(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	t, err := mail.ParseDate(v)
	if err != nil {
		return time.Time{}, &DateError{Value: s, Err: err}
	}
	if i := strings.IndexByte(v, ','); i >= 0 {
		day := strings.TrimSpace(v[:i])
		if want := t.Weekday().String()[:3]; !strings.EqualFold(day, want) {
			return time.Time{}, &DateError{
				Value: s,
				Err:   fmt.Errorf("day of week %s does not match date (%s)", day, want),
			}
		}
	}
	_, offset := t.Zone()
	return t.In(time.FixedZone(zoneName(offset), offset)), nil
}

func zoneName(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("%c%02d:%02d", sign, offset/3600, offset%3600/60)
}
