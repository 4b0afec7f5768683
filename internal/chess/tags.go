package chess

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/rrojas/gochess/internal/errors"
)

// TagPair is a single PGN tag pair.
type TagPair struct {
	Name  string
	Value string
}

// String renders the tag pair in PGN form.
func (t TagPair) String() string {
	return fmt.Sprintf("[%s \"%s\"]", t.Name, t.Value)
}

// SevenTagRoster lists the seven required PGN tags in the order they
// must be written.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// Date is a PGN date tag value. Zero components are unknown and render
// as the "?" placeholders the PGN standard uses.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateNow returns the current local date.
func DateNow() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// String renders the date as "YYYY.MM.DD" with "?" for unknown parts.
func (d Date) String() string {
	var sb strings.Builder
	if d.Year > 0 {
		fmt.Fprintf(&sb, "%04d", d.Year)
	} else {
		sb.WriteString("????")
	}
	sb.WriteByte('.')
	if d.Month > 0 {
		fmt.Fprintf(&sb, "%02d", d.Month)
	} else {
		sb.WriteString("??")
	}
	sb.WriteByte('.')
	if d.Day > 0 {
		fmt.Fprintf(&sb, "%02d", d.Day)
	} else {
		sb.WriteString("??")
	}
	return sb.String()
}

// ParseDate parses a PGN date tag value. "?" placeholders leave the
// component unknown; anything else must be numeric.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Date{}, errs.Wrapf(errs.ErrInvalidTag, "date %q", s)
	}
	var d Date
	for i, dst := range []*int{&d.Year, &d.Month, &d.Day} {
		if strings.Trim(parts[i], "?") == "" {
			continue
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return Date{}, errs.Wrapf(errs.ErrInvalidTag, "date %q", s)
		}
		*dst = n
	}
	return d, nil
}

// Round is a PGN round tag value: a known sequence of round numbers
// ("2" or "3.1"), unknown ("?"), or inappropriate ("-").
type Round struct {
	Numbers       []int
	Inappropriate bool
}

// RoundUnknown returns the unknown round value.
func RoundUnknown() Round {
	return Round{}
}

// ParseRound parses a round tag value. Non-numeric round components
// surface a tag error distinct from move errors.
func ParseRound(s string) (Round, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "?":
		return Round{}, nil
	case "-":
		return Round{Inappropriate: true}, nil
	}
	var numbers []int
	for _, part := range strings.Split(s, ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Round{}, errs.Wrapf(errs.ErrInvalidTag, "round %q", s)
		}
		numbers = append(numbers, n)
	}
	return Round{Numbers: numbers}, nil
}

// String renders the round tag value.
func (r Round) String() string {
	if r.Inappropriate {
		return "-"
	}
	if len(r.Numbers) == 0 {
		return "?"
	}
	parts := make([]string, len(r.Numbers))
	for i, n := range r.Numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Result is a PGN game result.
type Result int

const (
	ResultUnknown Result = iota
	WhiteWin
	BlackWin
	Draw
)

// String returns the PGN result token.
func (r Result) String() string {
	switch r {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// ParseResult decodes a result token. Unrecognized tokens report a tag
// error.
func ParseResult(s string) (Result, error) {
	switch strings.TrimSpace(s) {
	case "1-0":
		return WhiteWin, nil
	case "0-1":
		return BlackWin, nil
	case "1/2-1/2":
		return Draw, nil
	case "*":
		return ResultUnknown, nil
	}
	return ResultUnknown, errs.Wrapf(errs.ErrInvalidTag, "result %q", s)
}

// IsResultToken reports whether s is a valid movetext result token.
func IsResultToken(s string) bool {
	_, err := ParseResult(s)
	return err == nil
}
