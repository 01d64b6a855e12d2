package interpreter

import (
	"fmt"
	"strings"
)

// Stats counts what happened to each line of a run

type Stats struct {
	outcomes    map[Outcome]int
	parseErrors int
}

func NewStats() *Stats {
	return &Stats{outcomes: make(map[Outcome]int)}
}

func (s *Stats) Record(o Outcome) {
	s.outcomes[o]++
}

func (s *Stats) RecordParseError() {
	s.parseErrors++
}

func (s *Stats) Count(o Outcome) int {
	return s.outcomes[o]
}

func (s *Stats) ParseErrors() int {
	return s.parseErrors
}

// Total counts every executed line plus every line that failed to parse.
func (s *Stats) Total() int {
	n := s.parseErrors
	for _, c := range s.outcomes {
		n += c
	}
	return n
}

func (s *Stats) String() string {
	parts := make([]string, 0, 5)
	for _, o := range []Outcome{Applied, Reported, Rejected, Unplaced} {
		parts = append(parts, fmt.Sprintf("%s=%d", o, s.outcomes[o]))
	}
	parts = append(parts, fmt.Sprintf("parse_errors=%d", s.parseErrors))
	return strings.Join(parts, " ")
}
