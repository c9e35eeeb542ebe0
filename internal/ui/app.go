package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"PrimitiveBoard/internal/config"
	"PrimitiveBoard/internal/editor"
	"PrimitiveBoard/internal/logging"
)

// NewEditor builds an editor from the loaded configuration.
func NewEditor(cfg config.Config) *editor.Editor {
	return editor.New(
		editor.WithKind(cfg.Kind),
		editor.WithStyle(cfg.Color, cfg.Width),
		editor.WithViewport(cfg.Mapper()),
		editor.WithRenderOptions(cfg.RenderOptions()),
		editor.WithSaveFormat(cfg.SaveFormat),
	)
}

// RunApp opens the board window and blocks until it is closed. When open
// is not empty that drawing is loaded first.
func RunApp(cfg config.Config, open string) {
	ed := NewEditor(cfg)
	ed.SetViewportEnabled(cfg.ViewportEnabled)

	myApp := app.New()
	myWindow := myApp.NewWindow("Primitive Board")

	board := NewBoardWidget(ed, cfg.CanvasWidth, cfg.CanvasHeight)
	board.ExportScale = cfg.ExportScale
	toolbar := NewToolbar(board, myWindow)

	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, container.NewScroll(board))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(cfg.CanvasWidth), float32(cfg.CanvasHeight)+120))

	addShortcuts(myWindow, ed)

	if open != "" {
		if err := ed.Load(open); err != nil {
			dialog.ShowError(err, myWindow)
		}
	}

	logging.For("ui").Info("window open", "width", cfg.CanvasWidth, "height", cfg.CanvasHeight)
	myWindow.ShowAndRun()
}

// addShortcuts binds Ctrl+Z and Ctrl+Y (Cmd on macOS) to undo and redo.
func addShortcuts(w fyne.Window, ed *editor.Editor) {
	c := w.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { ed.Undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { ed.Redo() })
}
