package theme

// KnownSelectors is the suggestion catalog of widget selectors offered by
// editing surfaces. It is advisory only: WidgetTheme accepts any selector
// string, known or not.
var KnownSelectors = []string{
	// Main containers
	"QMainWindow",
	"QWidget",
	"QDialog",
	"QFrame",

	// Layout widgets
	"QGroupBox",
	"QGroupBox::title",
	"QTabWidget",
	"QTabWidget::pane",
	"QTabBar",
	"QTabBar::tab",
	"QTabBar::tab:selected",
	"QTabBar::tab:hover",
	"QSplitter",
	"QSplitter::handle",

	// Buttons
	"QPushButton",
	"QPushButton:hover",
	"QPushButton:pressed",
	"QPushButton:disabled",
	"QPushButton:checked",
	"QToolButton",
	"QToolButton:hover",
	"QRadioButton",
	"QRadioButton::indicator",
	"QRadioButton::indicator:checked",
	"QCheckBox",
	"QCheckBox::indicator",
	"QCheckBox::indicator:checked",

	// Input fields
	"QLineEdit",
	"QLineEdit:focus",
	"QLineEdit:disabled",
	"QTextEdit",
	"QTextEdit:focus",
	"QPlainTextEdit",
	"QSpinBox",
	"QDoubleSpinBox",

	// Selection widgets
	"QComboBox",
	"QComboBox:hover",
	"QComboBox::drop-down",
	"QComboBox QAbstractItemView",
	"QListWidget",
	"QListWidget::item",
	"QListWidget::item:selected",
	"QListWidget::item:hover",
	"QTreeWidget",
	"QTreeWidget::item",
	"QTreeWidget::item:selected",
	"QTableWidget",
	"QTableWidget::item",
	"QTableWidget::item:selected",
	"QHeaderView",
	"QHeaderView::section",

	// Display widgets
	"QLabel",
	"QProgressBar",
	"QProgressBar::chunk",

	// Scrolling
	"QScrollArea",
	"QScrollBar:vertical",
	"QScrollBar:horizontal",
	"QScrollBar::handle:vertical",
	"QScrollBar::handle:horizontal",

	// Sliders
	"QSlider",
	"QSlider::groove:horizontal",
	"QSlider::handle:horizontal",

	// Menu and status
	"QMenuBar",
	"QMenuBar::item",
	"QMenuBar::item:selected",
	"QMenu",
	"QMenu::item",
	"QMenu::item:selected",
	"QMenu::separator",
	"QToolBar",
	"QStatusBar",
}

// IsKnownSelector reports whether the selector appears in the catalog.
func IsKnownSelector(selector string) bool {
	for _, s := range KnownSelectors {
		if s == selector {
			return true
		}
	}
	return false
}
