package content

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is how essay dates are written in content files.
const DateLayout = "January 2, 2006"

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type NavGroup struct {
	Label string `yaml:"label"`
	Items []Link `yaml:"items"`
}

type Profile struct {
	FirstName string     `yaml:"first_name"`
	LastName  string     `yaml:"last_name"`
	Headline  string     `yaml:"headline"`
	Bio       []string   `yaml:"bio"`
	Nav       []NavGroup `yaml:"nav"`
}

func (p Profile) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type Essay struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`
	Category string `yaml:"category"`
	Excerpt  string `yaml:"excerpt"`
	ReadTime string `yaml:"read_time"`
	Body     string `yaml:"body"`

	published time.Time
}

// Published is the parsed form of Date.
func (e *Essay) Published() time.Time {
	return e.published
}

// ReadingTime returns the read time given in the content, or one estimated
// from the body at the given reading speed.
func (e *Essay) ReadingTime(wordsPerMinute int) string {
	if e.ReadTime != "" {
		return e.ReadTime
	}
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}

	words := len(strings.Fields(e.Body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

type ProjectLinks struct {
	Demo      string `yaml:"demo"`
	GitHub    string `yaml:"github"`
	CaseStudy string `yaml:"case_study"`
}

func (l ProjectLinks) Any() bool {
	return l.Demo != "" || l.GitHub != "" || l.CaseStudy != ""
}

type Project struct {
	ID              string       `yaml:"id"`
	Title           string       `yaml:"title"`
	Category        string       `yaml:"category"`
	Year            string       `yaml:"year"`
	Status          string       `yaml:"status"`
	Description     string       `yaml:"description"`
	LongDescription string       `yaml:"long_description"`
	Technologies    []string     `yaml:"technologies"`
	Team            string       `yaml:"team"`
	Impact          []string     `yaml:"impact"`
	Links           ProjectLinks `yaml:"links"`
}

type ReadingType string

const (
	Book    ReadingType = "book"
	Article ReadingType = "article"
	Paper   ReadingType = "paper"
)

func (t ReadingType) valid() bool {
	switch t {
	case Book, Article, Paper:
		return true
	}
	return false
}

type ReadingStatus string

const (
	StatusReading     ReadingStatus = "reading"
	StatusCompleted   ReadingStatus = "completed"
	StatusRecommended ReadingStatus = "recommended"
)

func (s ReadingStatus) valid() bool {
	switch s {
	case StatusReading, StatusCompleted, StatusRecommended:
		return true
	}
	return false
}

type ReadingItem struct {
	ID              string        `yaml:"id"`
	Title           string        `yaml:"title"`
	Author          string        `yaml:"author"`
	Type            ReadingType   `yaml:"type"`
	Category        string        `yaml:"category"`
	Status          ReadingStatus `yaml:"status"`
	Rating          int           `yaml:"rating"`
	PublishDate     string        `yaml:"publish_date"`
	ReadDate        string        `yaml:"read_date"`
	Description     string        `yaml:"description"`
	LongDescription string        `yaml:"long_description"`
	KeyTakeaways    []string      `yaml:"key_takeaways"`
	Impact          string        `yaml:"impact"`
	Link            string        `yaml:"link"`
}

// DateLine is "Read <date>" when a read date is known, "Published <date>"
// otherwise, or empty.
func (r *ReadingItem) DateLine() string {
	switch {
	case r.ReadDate != "":
		return "Read " + r.ReadDate
	case r.PublishDate != "":
		return "Published " + r.PublishDate
	}
	return ""
}

func (r *ReadingItem) LinkLabel() string {
	if r.Type == Book {
		return "View on Goodreads"
	}
	return "Read Article"
}

type EventType string

const (
	Work        EventType = "work"
	Education   EventType = "education"
	Achievement EventType = "achievement"
	ProjectWork EventType = "project"
)

func (t EventType) valid() bool {
	switch t {
	case Work, Education, Achievement, ProjectWork:
		return true
	}
	return false
}

type TimelineEvent struct {
	ID           string    `yaml:"id"`
	Date         string    `yaml:"date"`
	Title        string    `yaml:"title"`
	Organization string    `yaml:"organization"`
	Location     string    `yaml:"location"`
	Type         EventType `yaml:"type"`
	Description  string    `yaml:"description"`
	Impact       string    `yaml:"impact"`
	Details      []string  `yaml:"details"`
	Skills       []string  `yaml:"skills"`
}
