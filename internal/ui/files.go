package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"PrimitiveBoard/internal/export"
	"PrimitiveBoard/internal/logging"
)

func showSaveDialog(board *BoardWidget, win fyne.Window) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return
		}
		chosen := w.URI().Path()
		_ = w.Close()

		path, exists := jsonSavePath(chosen)
		if path != chosen {
			_ = os.Remove(chosen)
		}
		save := func() {
			if err := board.Editor().Save(path); err != nil {
				dialog.ShowError(err, win)
				return
			}
			board.SetStatus(fmt.Sprintf("Saved %d figures to %s", board.Editor().Document().Len(), filepath.Base(path)))
		}
		if !exists {
			save()
			return
		}
		dialog.ShowConfirm("Replace file?",
			fmt.Sprintf("%s already exists. Replace it?", filepath.Base(path)),
			func(ok bool) {
				if ok {
					save()
				}
			}, win)
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.SetFileName("drawing.json")
	d.Show()
}

// jsonSavePath gives the file a drawing chosen as chosen is written to.
// Drawings always carry the .json extension. exists reports a file at the
// returned path that the dialog did not create and has not confirmed.
func jsonSavePath(chosen string) (path string, exists bool) {
	if strings.EqualFold(filepath.Ext(chosen), ".json") {
		return chosen, false
	}
	path = chosen + ".json"
	_, err := os.Stat(path)
	return path, err == nil
}

func showLoadDialog(board *BoardWidget, win fyne.Window) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if r == nil {
			return
		}
		defer func() {
			if err := r.Close(); err != nil {
				logging.For("ui").Warn("close failed", "uri", r.URI().String(), "err", err)
			}
		}()

		if err := board.Editor().LoadFrom(r); err != nil {
			dialog.ShowError(fmt.Errorf("load %s: %w", r.URI().Name(), err), win)
			return
		}
		board.SetStatus(fmt.Sprintf("Loaded %d figures", board.Editor().Document().Len()))
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json", ".txt", ".csv"}))
	d.Show()
}

// showExportDialog writes the committed drawing as an image or a PDF,
// chosen by the extension the user types.
func showExportDialog(board *BoardWidget, win fyne.Window) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()

		ed := board.Editor()
		c := export.Canvas{
			Width:  int(board.width),
			Height: int(board.height),
			Scale:  board.ExportScale,
		}
		prims := ed.Document().Committed()
		opts := ed.RenderOptions()

		ext := strings.ToLower(w.URI().Extension())
		if ext == ".pdf" {
			err = export.WritePDF(w, prims, c, opts)
		} else {
			err = export.WriteImage(w, export.FormatForPath(w.URI().Name()), prims, c, opts)
		}
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		board.SetStatus("Exported " + w.URI().Name())
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".pdf", ".bmp", ".tiff"}))
	d.SetFileName("drawing.png")
	d.Show()
}
