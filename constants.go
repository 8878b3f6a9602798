package main

import "archhelper/internal/config"

type View int

const (
	ViewDomainChart View = iota
	ViewInfluenceMatrix
	ViewStakeholders
	ViewArchitectures
	ViewDatabases
	numViews
)

var viewTitles = [numViews]string{
	"Domain Chart",
	"Influence Matrix",
	"Stakeholders",
	"Architecture Styles",
	"Databases",
}

// viewByName maps config.Views names onto views.
func viewByName(name string) (View, bool) {
	for i, n := range config.Views {
		if n == name && i < int(numViews) {
			return View(i), true
		}
	}
	return ViewDomainChart, false
}

func (v View) isDiagram() bool {
	return v == ViewDomainChart || v == ViewInfluenceMatrix
}

func (v View) isTable() bool {
	return v == ViewArchitectures || v == ViewDatabases
}

type Mode int

const (
	ModeNormal Mode = iota
	ModeForm
	ModeConcern
	ModeMove
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmDeleteMarker ConfirmAction = iota
	ConfirmDeleteConcern
	ConfirmQuit
)

type formField int

const (
	fieldLabel formField = iota
	fieldColor
)

const (
	panelWidth  = 34
	surfacePadX = 8
	surfacePadY = 3
	minSurface  = 12

	// one keypress moves the pending point by this fraction of the extent
	nudgeStep = 0.05
)
