// Package content holds the copy shared by every skin of the site: hero,
// tracks, judging, prizes, timeline, FAQ and the terminal boot script.
package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/synthesis/internal/accordion"
	"github.com/ziadkadry99/synthesis/internal/boot"
)

// Link is a labelled call to action.
type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// Hero is the page header.
type Hero struct {
	Title       string `yaml:"title" json:"title"`
	Subtitle    string `yaml:"subtitle" json:"subtitle"`
	Description string `yaml:"description" json:"description"`
	Catchphrase string `yaml:"catchphrase" json:"catchphrase"`
	Ethos       string `yaml:"ethos" json:"ethos"`
	Microcopy   string `yaml:"microcopy" json:"microcopy"`
	Primary     []Link `yaml:"primary" json:"primary"`
	Secondary   []Link `yaml:"secondary" json:"secondary"`
}

// Section is a titled list of paragraphs.
type Section struct {
	Title string   `yaml:"title" json:"title"`
	Body  []string `yaml:"body" json:"body"`
}

// Track is one competition lane.
type Track struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Tagline  string   `yaml:"tagline" json:"tagline"`
	Examples []string `yaml:"examples,omitempty" json:"examples,omitempty"`
	Details  []string `yaml:"details,omitempty" json:"details,omitempty"`
	Note     string   `yaml:"note,omitempty" json:"note,omitempty"`
	Wants    []string `yaml:"wants,omitempty" json:"wants,omitempty"`
}

// Tracks lists the competition lanes.
type Tracks struct {
	Title string  `yaml:"title" json:"title"`
	Items []Track `yaml:"items" json:"items"`
}

// Jury is one of the judging panels.
type Jury struct {
	Name     string `yaml:"name" json:"name"`
	Criteria string `yaml:"criteria" json:"criteria"`
}

// Judging describes how projects are scored.
type Judging struct {
	Title     string   `yaml:"title" json:"title"`
	Subtitle  string   `yaml:"subtitle" json:"subtitle"`
	Juries    []Jury   `yaml:"juries" json:"juries"`
	WinsTitle string   `yaml:"wins_title" json:"wins_title"`
	Wins      []string `yaml:"wins" json:"wins"`
}

// Prizes describes the prize pool.
type Prizes struct {
	Title          string   `yaml:"title" json:"title"`
	Total          string   `yaml:"total" json:"total"`
	Note           string   `yaml:"note" json:"note"`
	Categories     []string `yaml:"categories" json:"categories"`
	SponsorCallout string   `yaml:"sponsor_callout" json:"sponsor_callout"`
}

// Group is one audience the event is looking for.
type Group struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Audience lists who should apply.
type Audience struct {
	Title  string  `yaml:"title" json:"title"`
	Groups []Group `yaml:"groups" json:"groups"`
}

// Event is a timeline milestone.
type Event struct {
	Label string `yaml:"label" json:"label"`
	Date  string `yaml:"date" json:"date"`
}

// Timeline lists the milestones.
type Timeline struct {
	Title  string  `yaml:"title" json:"title"`
	Events []Event `yaml:"events" json:"events"`
}

// FAQ is the accordion content.
type FAQ struct {
	Title string            `yaml:"title" json:"title"`
	Items []accordion.Entry `yaml:"items" json:"items"`
}

// Content is the complete copy of the site.
type Content struct {
	Hero           Hero        `yaml:"hero" json:"hero"`
	WhatThisIs     Section     `yaml:"what_this_is" json:"what_this_is"`
	Tracks         Tracks      `yaml:"tracks" json:"tracks"`
	TrojanHorse    Section     `yaml:"trojan_horse" json:"trojan_horse"`
	Judging        Judging     `yaml:"judging" json:"judging"`
	Prizes         Prizes      `yaml:"prizes" json:"prizes"`
	WhoShouldApply Audience    `yaml:"who_should_apply" json:"who_should_apply"`
	Timeline       Timeline    `yaml:"timeline" json:"timeline"`
	FAQ            FAQ         `yaml:"faq" json:"faq"`
	Footer         string      `yaml:"footer" json:"footer"`
	BootScript     []boot.Line `yaml:"boot_script" json:"boot_script"`
}

// Load reads a YAML file over Default. Keys missing from the file keep their
// built-in values; lists present in the file replace the built-in list.
func Load(path string) (*Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Validate reports missing required fields.
func (c *Content) Validate() error {
	var errs []error
	if c.Hero.Title == "" {
		errs = append(errs, errors.New("hero.title is required"))
	}
	if len(c.FAQ.Items) == 0 {
		errs = append(errs, errors.New("faq.items needs at least one entry"))
	}
	for i, e := range c.FAQ.Items {
		if e.Question == "" {
			errs = append(errs, fmt.Errorf("faq.items[%d]: question is empty", i))
		}
	}
	for i, l := range c.BootScript {
		if l.Command == "" {
			errs = append(errs, fmt.Errorf("boot_script[%d]: cmd is empty", i))
		}
		if l.Speed < 0 || l.Delay < 0 {
			errs = append(errs, fmt.Errorf("boot_script[%d]: negative duration", i))
		}
	}
	seen := make(map[string]bool)
	for i, t := range c.Tracks.Items {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("tracks.items[%d]: id is empty", i))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("tracks.items[%d]: duplicate id %q", i, t.ID))
		}
		seen[t.ID] = true
	}
	return errors.Join(errs...)
}

// Track returns the track with the given id.
func (c *Content) Track(id string) (Track, bool) {
	for _, t := range c.Tracks.Items {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}
