package feature

import "errors"

// Preamble is written under the Feature: header of every generated file.
const Preamble = "This document should work"

var errNoScenario = errors.New("no active scenario")

// Feature is the translated form of one document.
type Feature struct {
	Name      string
	Preamble  string
	Scenarios []*Scenario
}

// Scenario holds the rendered lines of one section, relative to the step
// indent.
type Scenario struct {
	Title string
	Lines []string
}

// State accumulates scenarios for a single translation run. It is created
// fresh per document and must not be reused after Feature is called or after
// the run fails.
//
// Scenarios are registered in the order their titles are met. Two sections
// with the same title produce two scenarios. Scenarios that never receive a
// line are dropped by Feature.
type State struct {
	feature Feature
	current *Scenario
}

func NewState(name string) *State {
	return &State{feature: Feature{Name: name, Preamble: Preamble}}
}

// Open registers a new scenario and makes it current.
func (s *State) Open(title string) *Scenario {
	sc := &Scenario{Title: title}
	s.feature.Scenarios = append(s.feature.Scenarios, sc)
	s.current = sc
	return sc
}

// Append adds lines to the current scenario.
func (s *State) Append(lines ...string) error {
	if s.current == nil {
		return errNoScenario
	}
	s.current.Lines = append(s.current.Lines, lines...)
	return nil
}

// Feature returns the feature with empty scenarios removed.
func (s *State) Feature() Feature {
	f := Feature{Name: s.feature.Name, Preamble: s.feature.Preamble}
	for _, sc := range s.feature.Scenarios {
		if len(sc.Lines) == 0 {
			continue
		}
		f.Scenarios = append(f.Scenarios, &Scenario{
			Title: sc.Title,
			Lines: append([]string(nil), sc.Lines...),
		})
	}
	return f
}
