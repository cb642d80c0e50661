// Main editor window: renders the working image and routes menu commands
package gui

import (
	"fmt"
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"photo-editor/internal/codec"
	"photo-editor/internal/core"
	"photo-editor/internal/raster"
)

const (
	windowTitle   = "Image Editor"
	initialWidth  = 500
	initialHeight = 500
)

// Application is the editor window. It holds one edit session and never
// touches pixels itself.
type Application struct {
	app    fyne.App
	window fyne.Window
	logger logrus.FieldLogger

	session *core.Session
	loader  *codec.ImageLoader

	display     *canvas.Image
	statusLabel *widget.Label
	menuHandler *MenuHandler
}

func NewApplication(app fyne.App, session *core.Session, loader *codec.ImageLoader, logger logrus.FieldLogger) *Application {
	window := app.NewWindow(windowTitle)
	window.Resize(fyne.NewSize(initialWidth, initialHeight))

	a := &Application{
		app:     app,
		window:  window,
		logger:  logger,
		session: session,
		loader:  loader,
	}

	a.display = canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	a.display.FillMode = canvas.ImageFillContain
	a.statusLabel = widget.NewLabel("Open an image to start editing")

	a.menuHandler = NewMenuHandler(a)
	window.SetMainMenu(a.menuHandler.MainMenu())
	a.menuHandler.RegisterShortcuts(window.Canvas())

	window.SetContent(container.NewBorder(nil, a.statusLabel, nil, nil, a.display))
	return a
}

// Window returns the editor window
func (a *Application) Window() fyne.Window {
	return a.window
}

// Session returns the edit session driven by the window
func (a *Application) Session() *core.Session {
	return a.session
}

// ShowAndRun shows the window and runs the event loop
func (a *Application) ShowAndRun() {
	a.logger.Info("Showing editor window")
	a.window.ShowAndRun()
}

// LoadFile opens an image from disk, as the Open command does
func (a *Application) LoadFile(path string) error {
	buf, err := a.loader.LoadImage(path)
	if err != nil {
		return err
	}
	return a.loadBuffer(buf, path)
}

func (a *Application) loadBuffer(buf *raster.Buffer, source string) error {
	if err := a.session.Load(buf, source); err != nil {
		return err
	}
	a.menuHandler.SetImageLoaded(true)
	a.refresh()
	return nil
}

// refresh redraws the working image and the status line
func (a *Application) refresh() {
	current, err := a.session.Current()
	if err != nil {
		a.statusLabel.SetText("Open an image to start editing")
		return
	}

	a.display.Image = current.ToImage()
	a.display.SetMinSize(fyne.NewSize(float32(current.Width), float32(current.Height)))
	a.display.Refresh()

	a.statusLabel.SetText(a.statusText(current))
}

func (a *Application) statusText(current *raster.Buffer) string {
	edits := len(a.session.Steps())
	text := fmt.Sprintf("%s | %d edit(s)", current.Size(), edits)

	quality, err := a.session.Quality()
	switch {
	case err != nil:
		text += " | PSNR n/a"
	case math.IsInf(quality["psnr"], 1):
		text += " | identical to original"
	default:
		text += fmt.Sprintf(" | PSNR %.1f dB", quality["psnr"])
	}
	return text
}

func (a *Application) showError(title string, err error) {
	a.logger.WithField("error", err).Error(title)
	dialog.ShowError(err, a.window)
}

func (a *Application) showInfo(title, message string) {
	a.logger.WithField("message", message).Info(title)
	dialog.ShowInformation(title, message, a.window)
}
