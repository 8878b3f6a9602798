package main

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"archhelper/internal/config"
	"archhelper/internal/diagram"
	"archhelper/internal/export"
	"archhelper/internal/refdata"
	"archhelper/internal/storage"
)

// Pane is one diagram with its selection state. The stakeholder view shares
// the influence matrix pane.
type Pane struct {
	board        *diagram.Board
	selected     string
	concern      int
	originalMove diagram.Point
}

// TablePane is one comparison table view.
type TablePane struct {
	data      *refdata.Table
	selection *refdata.Selection
	table     table.Model
	stars     bool
}

type model struct {
	ctx    context.Context
	width  int
	height int

	view View
	mode Mode
	help bool

	panes  map[View]*Pane
	tables map[View]*TablePane

	labelInput   textinput.Model
	colorInput   textinput.Model
	concernInput textinput.Model
	focus        formField
	concernType  diagram.ConcernType

	confirmAction  ConfirmAction
	exporting      bool
	errorMessage   string
	successMessage string

	config   *config.Config
	store    storage.Store
	exporter export.Exporter
	log      *zap.Logger
}

// exportDoneMsg reports the outcome of a background export.
type exportDoneMsg struct {
	diagram string
	path    string
	err     error
}
