package logfile

import (
	"time"
)

type baseLogfile struct {
	records []Record
	pos     int
}

func (l *baseLogfile) Next() Record {
	if l.pos+1 >= len(l.records) {
		return Record{EOF: true}
	}
	l.pos++
	return l.records[l.pos]
}

func (l *baseLogfile) Prev() Record {
	if l.pos-1 < 0 {
		return Record{EOF: true}
	}
	l.pos--
	return l.records[l.pos]
}

func (l *baseLogfile) Seek(pos int) Record {
	if pos < 0 || pos >= len(l.records) {
		return Record{EOF: true}
	}
	l.pos = pos
	return l.records[pos]
}

func (l *baseLogfile) Pos() int {
	return l.pos
}

func (l *baseLogfile) Len() int {
	return len(l.records)
}

func (l *baseLogfile) Start() time.Time {
	if len(l.records) > 0 {
		return l.records[0].Time
	}
	return time.Time{}
}

func (l *baseLogfile) End() time.Time {
	if len(l.records) > 0 {
		return l.records[len(l.records)-1].Time
	}
	return time.Time{}
}

func (l *baseLogfile) Close() {
	l.records = nil
	l.pos = -1
}

func (l *baseLogfile) setDelays() {
	for i := 0; i < len(l.records)-1; i++ {
		l.records[i].DelayTillNext = l.records[i+1].Time.Sub(l.records[i].Time).Milliseconds()
	}
}
