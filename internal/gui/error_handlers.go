package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ErrorView creates a user-friendly error display with retry functionality.
func (a *App) ErrorView(title string, err error, retryFunc func() fyne.CanvasObject) fyne.CanvasObject {
	titleLabel := widget.NewLabelWithStyle("⚠️  "+title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	errorLabel := widget.NewLabel(userMessage(err))
	errorLabel.Wrapping = fyne.TextWrapWord

	var buttons []fyne.CanvasObject
	if retryFunc != nil {
		buttons = append(buttons, widget.NewButton("Refresh", func() {
			a.window.SetContent(retryFunc())
		}))
	}

	return container.NewCenter(
		container.NewVBox(
			titleLabel,
			widget.NewSeparator(),
			errorLabel,
			container.NewHBox(buttons...),
		),
	)
}

// NoDataView creates a friendly message when no data is available.
func (a *App) NoDataView(title string, message string) fyne.CanvasObject {
	titleLabel := widget.NewLabelWithStyle("📊  "+title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord
	messageLabel.Alignment = fyne.TextAlignCenter

	return container.NewCenter(container.NewVBox(titleLabel, messageLabel))
}

// userMessage translates errors into text suitable for display.
func userMessage(err error) string {
	if err == nil {
		return "An unexpected issue occurred. Please try refreshing."
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
