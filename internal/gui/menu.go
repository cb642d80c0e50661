// Menu handler mapping the editor commands onto the session
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"

	"photo-editor/internal/algorithms"
	"photo-editor/internal/codec"
)

// Commands handled by the window rather than the transform engines
const (
	CommandOpen    = "Open"
	CommandSaveAs  = "Save As"
	CommandExit    = "Exit"
	CommandRestore = "Restore to Original"
)

// shortcutKeys assigns Ctrl+key accelerators in menu order
var shortcutKeys = map[string]fyne.KeyName{
	CommandOpen:          fyne.KeyO,
	CommandSaveAs:        fyne.KeyS,
	CommandExit:          fyne.KeyE,
	CommandRestore:       fyne.KeyR,
	"Horizontal Flip":    fyne.KeyH,
	"Vertical Flip":      fyne.KeyV,
	"Gray Scale":         fyne.KeyG,
	"Sepia Tone":         fyne.KeyP,
	"Invert Colour":      fyne.KeyI,
	"Gaussian Blur":      fyne.KeyU,
	"Bulge Effect":       fyne.KeyB,
	"Rotate Orientation": fyne.KeyC,
	"Red Filter":         fyne.KeyQ,
	"Green Filter":       fyne.KeyW,
	"Blue Filter":        fyne.KeyA,
}

// MenuHandler handles menu actions
type MenuHandler struct {
	app      *Application
	mainMenu *fyne.MainMenu
	items    map[string]*fyne.MenuItem
	order    []string
}

func NewMenuHandler(app *Application) *MenuHandler {
	mh := &MenuHandler{
		app:   app,
		items: make(map[string]*fyne.MenuItem),
	}
	mh.mainMenu = mh.buildMainMenu()
	mh.SetImageLoaded(false)
	return mh
}

// MainMenu returns the File and Option menus
func (mh *MenuHandler) MainMenu() *fyne.MainMenu {
	return mh.mainMenu
}

func (mh *MenuHandler) buildMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		mh.item(CommandOpen),
		mh.item(CommandSaveAs),
		fyne.NewMenuItemSeparator(),
		mh.item(CommandExit),
	)

	names := algorithms.Names()
	options := []*fyne.MenuItem{mh.item(CommandRestore), fyne.NewMenuItemSeparator()}
	for i, name := range names {
		// Geometry and color edits first, then orientation and channel filters
		if name == "Rotate Orientation" && i > 0 {
			options = append(options, fyne.NewMenuItemSeparator())
		}
		options = append(options, mh.item(name))
	}
	optionMenu := fyne.NewMenu("Option", options...)

	return fyne.NewMainMenu(fileMenu, optionMenu)
}

func (mh *MenuHandler) item(name string) *fyne.MenuItem {
	item := fyne.NewMenuItem(name, func() {
		mh.run(name)
	})
	if key, ok := shortcutKeys[name]; ok {
		item.Shortcut = &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
	}
	mh.items[name] = item
	mh.order = append(mh.order, name)
	return item
}

// RegisterShortcuts binds every menu accelerator on the window canvas
func (mh *MenuHandler) RegisterShortcuts(c fyne.Canvas) {
	for _, name := range mh.order {
		item := mh.items[name]
		shortcut, ok := item.Shortcut.(*desktop.CustomShortcut)
		if !ok {
			continue
		}
		c.AddShortcut(shortcut, func(fyne.Shortcut) {
			if !item.Disabled {
				item.Action()
			}
		})
	}
}

// SetImageLoaded enables every command once an image is open. Before that
// only Open and Exit are available.
func (mh *MenuHandler) SetImageLoaded(loaded bool) {
	for name, item := range mh.items {
		item.Disabled = !loaded && name != CommandOpen && name != CommandExit
	}
	mh.mainMenu.Refresh()
}

// Enabled reports whether the named command can currently be chosen
func (mh *MenuHandler) Enabled(name string) bool {
	item, ok := mh.items[name]
	return ok && !item.Disabled
}

func (mh *MenuHandler) run(name string) {
	if err := mh.Dispatch(name); err != nil {
		mh.app.showError(name, err)
	}
}

// Dispatch executes one command by name
func (mh *MenuHandler) Dispatch(name string) error {
	switch name {
	case CommandOpen:
		mh.openImage()
		return nil
	case CommandSaveAs:
		return mh.saveImage()
	case CommandExit:
		mh.confirmExit()
		return nil
	case CommandRestore:
		if err := mh.app.session.RestoreOriginal(); err != nil {
			return err
		}
	default:
		if err := mh.app.session.ApplyNamed(name); err != nil {
			return err
		}
	}
	mh.app.refresh()
	return nil
}

func (mh *MenuHandler) openImage() {
	mh.app.logger.Info("Opening file dialog for image selection")

	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mh.app.showError("File Dialog Error", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		source := reader.URI().Path()
		buf, err := mh.app.loader.ReadImage(reader, source)
		if err != nil {
			mh.app.showError("Failed to Load Image", err)
			return
		}
		if err := mh.app.loadBuffer(buf, source); err != nil {
			mh.app.showError("Failed to Set Image", err)
		}
	}, mh.app.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(codec.SupportedExtensions()))
	fileDialog.Show()
}

func (mh *MenuHandler) saveImage() error {
	current, err := mh.app.session.Current()
	if err != nil {
		return err
	}

	mh.app.logger.Info("Opening file dialog for image saving")

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mh.app.showError("File Dialog Error", err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		target := writer.URI().Path()
		if err := mh.app.loader.WriteImage(writer, current, target); err != nil {
			mh.app.showError("Failed to Save Image", err)
			return
		}
		mh.app.showInfo("Success", fmt.Sprintf("The image was saved to %s", target))
	}, mh.app.window)

	extensions := make([]string, 0, len(codec.SaveFormats()))
	for _, format := range codec.SaveFormats() {
		extensions = append(extensions, format.Extension())
	}
	fileDialog.SetFileName("edited" + codec.FormatPNG.Extension())
	fileDialog.SetFilter(storage.NewExtensionFileFilter(extensions))
	fileDialog.Show()
	return nil
}

func (mh *MenuHandler) confirmExit() {
	dialog.ShowConfirm(CommandExit, "Are you sure you want to exit?", func(ok bool) {
		if ok {
			mh.app.logger.Info("Application shutting down")
			mh.app.app.Quit()
		}
	}, mh.app.window)
}
