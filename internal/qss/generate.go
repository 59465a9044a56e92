// Package qss synthesizes Qt-style stylesheets from an 8-role palette and
// heuristically extracts a palette back out of arbitrary stylesheet text.
package qss

import (
	"strings"

	"github.com/hueshift/hueshift/internal/theme"
)

// Generate renders the stylesheet for a palette. Output is deterministic:
// a fixed sequence of selector blocks with the palette roles substituted
// into fixed property slots. Equal palettes produce byte-identical text.
func Generate(p theme.Palette) string {
	p = p.Normalized()
	r := strings.NewReplacer(
		"{background}", string(p.Background),
		"{foreground}", string(p.Foreground),
		"{primary}", string(p.Primary),
		"{secondary}", string(p.Secondary),
		"{border}", string(p.Border),
		"{hover}", string(p.Hover),
		"{selected}", string(p.Selected),
		"{disabled}", string(p.Disabled),
	)
	return r.Replace(stylesheetTemplate)
}

// stylesheetTemplate fixes the role-to-property assignment per selector
// block. Block order and property order are part of the output contract.
// The secondary role intentionally has no slot in the generated sheet; it
// only participates in theme conversion.
const stylesheetTemplate = `/* hueshift generated theme */

/* Main Window and Widgets */
QWidget {
    background-color: {background};
    color: {foreground};
    font-size: 10pt;
}

/* Buttons */
QPushButton {
    background-color: {primary};
    color: {background};
    border: 1px solid {border};
    border-radius: 4px;
    padding: 5px 15px;
    min-width: 80px;
}

QPushButton:hover {
    background-color: {hover};
    color: {foreground};
}

QPushButton:pressed {
    background-color: {selected};
    color: {background};
}

QPushButton:disabled {
    background-color: {disabled};
    color: {border};
}

/* Input Fields */
QLineEdit, QTextEdit, QPlainTextEdit {
    background-color: {background};
    color: {foreground};
    border: 1px solid {border};
    border-radius: 3px;
    padding: 4px;
}

QLineEdit:focus, QTextEdit:focus, QPlainTextEdit:focus {
    border: 2px solid {primary};
}

/* ComboBox */
QComboBox {
    background-color: {background};
    color: {foreground};
    border: 1px solid {border};
    border-radius: 3px;
    padding: 4px;
}

QComboBox:hover {
    border: 1px solid {primary};
}

QComboBox::drop-down {
    border: none;
}

QComboBox QAbstractItemView {
    background-color: {background};
    color: {foreground};
    selection-background-color: {selected};
    selection-color: {background};
}

/* SpinBox */
QSpinBox, QDoubleSpinBox {
    background-color: {background};
    color: {foreground};
    border: 1px solid {border};
    border-radius: 3px;
    padding: 3px;
}

/* CheckBox and RadioButton */
QCheckBox, QRadioButton {
    color: {foreground};
    spacing: 5px;
}

QCheckBox::indicator, QRadioButton::indicator {
    width: 16px;
    height: 16px;
    border: 1px solid {border};
    background-color: {background};
}

QCheckBox::indicator:checked, QRadioButton::indicator:checked {
    background-color: {primary};
}

/* ProgressBar */
QProgressBar {
    background-color: {background};
    border: 1px solid {border};
    border-radius: 3px;
    text-align: center;
}

QProgressBar::chunk {
    background-color: {primary};
    border-radius: 2px;
}

/* Slider */
QSlider::groove:horizontal {
    background: {border};
    height: 6px;
    border-radius: 3px;
}

QSlider::handle:horizontal {
    background: {primary};
    width: 16px;
    margin: -5px 0;
    border-radius: 8px;
}

/* List, Tree, Table */
QListWidget, QTreeWidget, QTableWidget {
    background-color: {background};
    color: {foreground};
    border: 1px solid {border};
    alternate-background-color: {hover};
}

QListWidget::item:selected, QTreeWidget::item:selected, QTableWidget::item:selected {
    background-color: {selected};
    color: {background};
}

/* TabWidget */
QTabWidget::pane {
    border: 1px solid {border};
    background-color: {background};
}

QTabBar::tab {
    background-color: {hover};
    color: {foreground};
    border: 1px solid {border};
    padding: 6px 12px;
}

QTabBar::tab:selected {
    background-color: {primary};
    color: {background};
}

/* GroupBox */
QGroupBox {
    border: 1px solid {border};
    border-radius: 4px;
    margin-top: 10px;
    padding-top: 10px;
    color: {foreground};
}

QGroupBox::title {
    subcontrol-origin: margin;
    subcontrol-position: top left;
    padding: 0 5px;
    color: {foreground};
}

/* MenuBar and Menu */
QMenuBar {
    background-color: {background};
    color: {foreground};
}

QMenuBar::item:selected {
    background-color: {hover};
}

QMenu {
    background-color: {background};
    color: {foreground};
    border: 1px solid {border};
}

QMenu::item:selected {
    background-color: {selected};
    color: {background};
}

/* StatusBar */
QStatusBar {
    background-color: {background};
    color: {foreground};
    border-top: 1px solid {border};
}

/* ScrollBar */
QScrollBar:vertical {
    background: {background};
    width: 12px;
    border: 1px solid {border};
}

QScrollBar::handle:vertical {
    background: {primary};
    min-height: 20px;
    border-radius: 4px;
}

QScrollBar::add-line:vertical, QScrollBar::sub-line:vertical {
    height: 0px;
}
`
