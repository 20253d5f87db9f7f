package date

// Clock tells what day it is.
//
// The store never calls Today directly, so that "today" can be advanced or
// pinned from the outside.
type Clock interface {
	Today() Date
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() Date

func (f ClockFunc) Today() Date { return f() }

// System is the clock of the machine.
var System Clock = ClockFunc(Today)

// Fixed returns a clock that is always on day d.
func Fixed(d Date) Clock { return ClockFunc(func() Date { return d }) }

// Offset returns a clock that runs days ahead of c (or behind when negative).
func Offset(c Clock, days int) Clock {
	if days == 0 {
		return c
	}
	return ClockFunc(func() Date { return c.Today().Add(days) })
}
